package models

import "time"

type Category struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(100);unique;not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	DisplayOrder int        `gorm:"not null" json:"displayOrder"`
	IsActive     bool       `gorm:"not null" json:"isActive"`
	CreatedAt    time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updatedAt"`
	MenuItems    []MenuItem `gorm:"foreignKey:CategoryID" json:"menuItems,omitempty"`
}
