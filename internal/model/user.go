package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role labels the authorization level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string         `json:"username" gorm:"uniqueIndex;size:20;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password     string         `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed
	Avatar       *string        `json:"avatar,omitempty" gorm:"size:512"`
	Role         Role           `json:"role" gorm:"type:varchar(10);not null;default:'USER'"`
	Verified     bool           `json:"verified" gorm:"default:false"`
	SessionToken *string        `json:"sessionToken,omitempty" gorm:"uniqueIndex;size:512"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
