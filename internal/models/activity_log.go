package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is the admin audit trail. OldValues/NewValues hold JSON
// snapshots serialized by the handler that recorded the change.
type ActivityLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action    string     `gorm:"not null" json:"action"`
	Entity    string     `gorm:"not null;index" json:"entity"`
	EntityID  *uuid.UUID `gorm:"type:uuid" json:"entityId,omitempty"`
	OldValues string     `json:"oldValues,omitempty"`
	NewValues string     `json:"newValues,omitempty"`
	IPAddress string     `json:"ipAddress,omitempty"`
	UserAgent string     `json:"userAgent,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (entry *ActivityLog) BeforeCreate(tx *gorm.DB) (err error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return
}
