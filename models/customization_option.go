package models

import "time"

type CustomizationOption struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	MenuItemID          uint      `gorm:"not null;index" json:"menuItemId"`
	Name                string    `gorm:"type:varchar(100);not null" json:"name"`
	Price               float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	IsAvailable         bool      `gorm:"not null" json:"isAvailable"`
	GroupName           string    `gorm:"type:varchar(50)" json:"groupName,omitempty"`
	IsMutuallyExclusive bool      `gorm:"not null" json:"isMutuallyExclusive"`
	CreatedAt           time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt           time.Time `gorm:"not null" json:"updatedAt"`
}
