package models

import (
	"time"

	"gorm.io/gorm"
)

type MenuItem struct {
	ID                   uint                  `gorm:"primaryKey" json:"id"`
	CategoryID           uint                  `gorm:"not null" json:"categoryId"`
	Category             *Category             `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Name                 string                `gorm:"type:varchar(100);not null" json:"name"`
	Description          string                `gorm:"type:text" json:"description,omitempty"`
	Price                float64               `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageUrl             *string               `gorm:"type:varchar(255)" json:"imageUrl,omitempty"`
	IsAvailable          bool                  `gorm:"not null" json:"isAvailable"`
	IsPopular            bool                  `gorm:"not null" json:"isPopular"`
	CreatedAt            time.Time             `gorm:"not null" json:"createdAt"`
	UpdatedAt            time.Time             `gorm:"not null" json:"updatedAt"`
	DeletedAt            gorm.DeletedAt        `gorm:"index" json:"-"`
	CustomizationOptions []CustomizationOption `gorm:"foreignKey:MenuItemID" json:"customizationOptions,omitempty"`
}
