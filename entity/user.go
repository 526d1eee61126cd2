package entity

import (
	"time"

	"gorm.io/datatypes"
)

// User profile, keyed by the identity provider's subject id. Rows are
// auto-provisioned on the first authenticated profile access.
type User struct {
	ID        string    `json:"id" gorm:"type:varchar(100);primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName string    `json:"first_name,omitempty" gorm:"type:varchar(100)"`
	LastName  string    `json:"last_name,omitempty" gorm:"type:varchar(100)"`
	Role      string    `json:"role" gorm:"type:varchar(20);default:'USER'"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type UserPreferences struct {
	UserID      string         `json:"user_id" gorm:"type:varchar(100);primaryKey"`
	Preferences datatypes.JSON `json:"preferences" gorm:"type:jsonb"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

type UserSession struct {
	ID             string    `json:"id" gorm:"type:varchar(100);primaryKey"`
	UserID         string    `json:"user_id" gorm:"type:varchar(100);not null;index"`
	IPAddress      string    `json:"ip_address,omitempty" gorm:"type:varchar(45)"`
	UserAgent      string    `json:"user_agent,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	LastActivityAt time.Time `json:"last_activity_at" gorm:"autoUpdateTime"`
}
