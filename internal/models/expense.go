package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense records an expenditure against an approved event. Amount always
// equals Quantity * UnitPrice; handlers recompute it on every write.
type Expense struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	EventID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"eventId"`
	Event      *Event          `gorm:"foreignKey:EventID" json:"event,omitempty"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category   *BudgetCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ItemName   string          `gorm:"not null" json:"itemName"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  float64         `gorm:"not null" json:"unitPrice"`
	Amount     float64         `gorm:"not null" json:"amount"`
	Remarks    string          `json:"remarks,omitempty"`
	ReceiptURL string          `json:"receiptUrl,omitempty"`
	AddedByID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"addedById"`
	AddedBy    *User           `gorm:"foreignKey:AddedByID" json:"addedBy,omitempty"`
	ProductID  *uuid.UUID      `gorm:"type:uuid" json:"productId,omitempty"`
	Product    *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (expense *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	return
}
