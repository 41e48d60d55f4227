package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of portal roles. A user's role only changes
// through an admin update followed by re-login.
type Role string

const (
	RoleAdmin               Role = "ADMIN"
	RoleEventTeamLead       Role = "EVENT_TEAM_LEAD"
	RoleWorkshopTeamLead    Role = "WORKSHOP_TEAM_LEAD"
	RoleFinanceTeam         Role = "FINANCE_TEAM"
	RoleFacilitiesTeam      Role = "FACILITIES_TEAM"
	RoleEventCoordinator    Role = "EVENT_COORDINATOR"
	RoleWorkshopCoordinator Role = "WORKSHOP_COORDINATOR"
)

// AllRoles lists every valid role in the order the portal presents them.
var AllRoles = []Role{
	RoleAdmin,
	RoleEventTeamLead,
	RoleWorkshopTeamLead,
	RoleFinanceTeam,
	RoleFacilitiesTeam,
	RoleEventCoordinator,
	RoleWorkshopCoordinator,
}

func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	Role      Role           `gorm:"type:varchar(32);not null" json:"role"`
	IsActive  bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return
}
