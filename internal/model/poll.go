package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Poll is an aggregate of a question and its options, owned by its creator.
// Options are created together with the poll and never mutated independently.
type Poll struct {
	ID             uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title          string     `json:"title" gorm:"size:255;not null"`
	CreatedByID    uuid.UUID  `json:"createdById" gorm:"type:char(36);not null;index"`
	VotingStartsAt *time.Time `json:"votingStartsAt,omitempty"`
	VotingEndsAt   *time.Time `json:"votingEndsAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	// Relations
	CreatedBy User     `json:"-" gorm:"foreignKey:CreatedByID"`
	Options   []Option `json:"options,omitempty" gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
	Votes     []Vote   `json:"votes,omitempty" gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Poll) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Option is a single choice within a poll.
type Option struct {
	ID     uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PollID uuid.UUID `json:"pollId" gorm:"type:char(36);not null;index"`
	Title  string    `json:"title" gorm:"size:255;not null"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Option) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
