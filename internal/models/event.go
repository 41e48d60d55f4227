package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventType string

const (
	EventTypeCultural    EventType = "CULTURAL"
	EventTypeTechnical   EventType = "TECHNICAL"
	EventTypeWorkshop    EventType = "WORKSHOP"
	EventTypeCompetition EventType = "COMPETITION"
	EventTypeSeminar     EventType = "SEMINAR"
	EventTypeEvent       EventType = "EVENT"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeCultural, EventTypeTechnical, EventTypeWorkshop,
		EventTypeCompetition, EventTypeSeminar, EventTypeEvent:
		return true
	}
	return false
}

// EventStatus follows PENDING -> {APPROVED, REJECTED}, APPROVED ->
// COMPLETED. REJECTED is terminal and nothing returns to PENDING.
type EventStatus string

const (
	StatusPending   EventStatus = "PENDING"
	StatusApproved  EventStatus = "APPROVED"
	StatusRejected  EventStatus = "REJECTED"
	StatusCompleted EventStatus = "COMPLETED"
)

type Event struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title                string         `gorm:"not null" json:"title"`
	Description          string         `json:"description,omitempty"`
	Type                 EventType      `gorm:"type:varchar(16);not null" json:"type"`
	Status               EventStatus    `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	Venue                string         `json:"venue,omitempty"`
	DateTime             *time.Time     `json:"dateTime,omitempty"`
	ExpectedParticipants *int           `json:"expectedParticipants,omitempty"`
	CreatorID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"creatorId"`
	Creator              *User          `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	CoordinatorID        *uuid.UUID     `gorm:"type:uuid" json:"coordinatorId,omitempty"`
	Coordinator          *User          `gorm:"foreignKey:CoordinatorID" json:"coordinator,omitempty"`
	Budgets              []Budget       `gorm:"foreignKey:EventID" json:"budgets,omitempty"`
	Expenses             []Expense      `gorm:"foreignKey:EventID" json:"expenses,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
