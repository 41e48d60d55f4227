package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   *float64        `json:"unitPrice,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid" json:"categoryId,omitempty"`
	Category    *BudgetCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsActive    bool            `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (product *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return
}
