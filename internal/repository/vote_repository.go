package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harshG775/voting-poll-server/internal/model"
)

// VoteRepository defines vote persistence operations.
type VoteRepository interface {
	// Cast records the caller's choice for a poll. A second cast for the
	// same poll overwrites the option instead of adding a row. The returned
	// bool is true when a new row was created.
	Cast(ctx context.Context, userID, pollID, optionID uuid.UUID) (*model.Vote, bool, error)
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Cast runs the find-then-write inside one transaction so concurrent casts
// for the same (user, poll) cannot interleave; the composite unique index on
// the votes table backs this at the schema level.
func (r *voteRepository) Cast(ctx context.Context, userID, pollID, optionID uuid.UUID) (*model.Vote, bool, error) {
	var vote model.Vote
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND poll_id = ?", userID, pollID).First(&vote).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			vote = model.Vote{
				UserID:   userID,
				PollID:   pollID,
				OptionID: optionID,
			}
			created = true
			return tx.Create(&vote).Error
		}
		if err != nil {
			return err
		}
		vote.OptionID = optionID
		return tx.Save(&vote).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &vote, created, nil
}
