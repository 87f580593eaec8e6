package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harshG775/voting-poll-server/internal/errors"
	"github.com/harshG775/voting-poll-server/internal/model"
)

// ListPollsParams carries optional pagination and ordering for poll listings.
// Offset and limit apply independently; an empty Order keeps the store's
// default ordering.
type ListPollsParams struct {
	Offset *int
	Limit  *int
	Order  string // "asc" or "desc" on created_at
}

// PollRepository defines poll persistence operations.
type PollRepository interface {
	CreateWithOptions(ctx context.Context, poll *model.Poll) error
	ListByCreator(ctx context.Context, creatorID uuid.UUID, params ListPollsParams) ([]model.Poll, error)
	FindByIDForCreator(ctx context.Context, id, creatorID uuid.UUID) (*model.Poll, error)
	DeleteAggregate(ctx context.Context, poll *model.Poll) error
}

type pollRepository struct {
	db *gorm.DB
}

// NewPollRepository creates a new poll repository.
func NewPollRepository(db *gorm.DB) PollRepository {
	return &pollRepository{db: db}
}

// CreateWithOptions persists the poll and its options as one aggregate.
// GORM inserts the associated options inside the same transaction.
func (r *pollRepository) CreateWithOptions(ctx context.Context, poll *model.Poll) error {
	tx := r.db.WithContext(ctx).Create(poll)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.ErrPollNotCreated
	}
	return nil
}

// ListByCreator returns the caller's polls. An empty result is a valid
// empty slice, not an error.
func (r *pollRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID, params ListPollsParams) ([]model.Poll, error) {
	q := r.db.WithContext(ctx).Where("created_by_id = ?", creatorID)
	if params.Offset != nil {
		q = q.Offset(*params.Offset)
	}
	if params.Limit != nil {
		q = q.Limit(*params.Limit)
	}
	switch params.Order {
	case "asc":
		q = q.Order("created_at asc")
	case "desc":
		q = q.Order("created_at desc")
	}

	var polls []model.Poll
	if err := q.Find(&polls).Error; err != nil {
		return nil, err
	}
	return polls, nil
}

// FindByIDForCreator returns a poll scoped to its creator, with options and
// votes preloaded.
func (r *pollRepository) FindByIDForCreator(ctx context.Context, id, creatorID uuid.UUID) (*model.Poll, error) {
	var poll model.Poll
	err := r.db.WithContext(ctx).
		Preload("Options").
		Preload("Votes").
		Where("id = ? AND created_by_id = ?", id, creatorID).
		First(&poll).Error
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

// DeleteAggregate removes the poll together with its votes and options in a
// single transaction.
func (r *pollRepository) DeleteAggregate(ctx context.Context, poll *model.Poll) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ?", poll.ID).Delete(&model.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("poll_id = ?", poll.ID).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		return tx.Delete(poll).Error
	})
}
