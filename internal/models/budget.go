package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget is one requested figure for one spending category within one
// event. ApprovedAmount stays nil until the finance decision fixes it.
type Budget struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	EventID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_event_category" json:"eventId"`
	CategoryID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_event_category" json:"categoryId"`
	Category            *BudgetCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Amount              float64         `gorm:"not null" json:"amount"`
	SponsorContribution float64         `gorm:"not null;default:0" json:"sponsorContribution"`
	ApprovedAmount      *float64        `json:"approvedAmount,omitempty"`
	Remarks             string          `json:"remarks,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (budget *Budget) BeforeCreate(tx *gorm.DB) (err error) {
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}
	return
}
