package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vote links a user to the option they picked in a poll. The composite
// unique index guarantees at most one row per (user, poll); a repeat vote
// overwrites OptionID instead of adding a row.
type Vote struct {
	ID       uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID   uuid.UUID `json:"userId" gorm:"type:char(36);not null;uniqueIndex:idx_votes_user_poll"`
	PollID   uuid.UUID `json:"pollId" gorm:"type:char(36);not null;uniqueIndex:idx_votes_user_poll"`
	OptionID uuid.UUID `json:"optionId" gorm:"type:char(36);not null;index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
