package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harshG775/voting-poll-server/internal/errors"
	"github.com/harshG775/voting-poll-server/internal/model"
	"github.com/harshG775/voting-poll-server/internal/repository"
)

// CreatePollInput carries the validated fields of a new poll.
type CreatePollInput struct {
	Title          string
	Options        []string
	VotingStartsAt *time.Time
	VotingEndsAt   *time.Time
}

// PollService handles poll CRUD and voting, always scoped to the caller.
type PollService interface {
	Create(ctx context.Context, creatorID uuid.UUID, in CreatePollInput) (*model.Poll, error)
	List(ctx context.Context, creatorID uuid.UUID, params repository.ListPollsParams) ([]model.Poll, error)
	Get(ctx context.Context, creatorID, pollID uuid.UUID) (*model.Poll, error)
	Delete(ctx context.Context, creatorID, pollID uuid.UUID) (*model.Poll, error)
	Vote(ctx context.Context, callerID, pollID, optionID uuid.UUID) (*model.Vote, bool, error)
}

type pollService struct {
	pollRepo repository.PollRepository
	voteRepo repository.VoteRepository
}

// NewPollService creates a new poll service.
func NewPollService(pollRepo repository.PollRepository, voteRepo repository.VoteRepository) PollService {
	return &pollService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
	}
}

// Create persists a poll and its options as one aggregate. An empty option
// list fails before any persistence call.
func (s *pollService) Create(ctx context.Context, creatorID uuid.UUID, in CreatePollInput) (*model.Poll, error) {
	if len(in.Options) == 0 {
		return nil, errors.ErrNoOptions
	}

	options := make([]model.Option, 0, len(in.Options))
	for _, text := range in.Options {
		options = append(options, model.Option{Title: text})
	}

	poll := &model.Poll{
		Title:          in.Title,
		CreatedByID:    creatorID,
		VotingStartsAt: in.VotingStartsAt,
		VotingEndsAt:   in.VotingEndsAt,
		Options:        options,
	}

	if err := s.pollRepo.CreateWithOptions(ctx, poll); err != nil {
		if err == errors.ErrPollNotCreated {
			return nil, err
		}
		return nil, fmt.Errorf("create poll: %w", err)
	}

	return poll, nil
}

// List returns the caller's polls. An empty result set is a normal empty
// list, not an error.
func (s *pollService) List(ctx context.Context, creatorID uuid.UUID, params repository.ListPollsParams) ([]model.Poll, error) {
	polls, err := s.pollRepo.ListByCreator(ctx, creatorID, params)
	if err != nil {
		return nil, fmt.Errorf("list polls: %w", err)
	}
	return polls, nil
}

// Get returns a single poll scoped to the caller.
func (s *pollService) Get(ctx context.Context, creatorID, pollID uuid.UUID) (*model.Poll, error) {
	poll, err := s.pollRepo.FindByIDForCreator(ctx, pollID, creatorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPollNotFound
		}
		return nil, fmt.Errorf("find poll: %w", err)
	}
	return poll, nil
}

// Delete removes the caller's poll and returns the deleted aggregate.
func (s *pollService) Delete(ctx context.Context, creatorID, pollID uuid.UUID) (*model.Poll, error) {
	poll, err := s.Get(ctx, creatorID, pollID)
	if err != nil {
		return nil, err
	}

	if err := s.pollRepo.DeleteAggregate(ctx, poll); err != nil {
		return nil, fmt.Errorf("delete poll: %w", err)
	}

	return poll, nil
}

// Vote records the caller's choice on one of their own polls. A repeat vote
// overwrites the previous option; the bool reports whether a row was created.
func (s *pollService) Vote(ctx context.Context, callerID, pollID, optionID uuid.UUID) (*model.Vote, bool, error) {
	poll, err := s.Get(ctx, callerID, pollID)
	if err != nil {
		return nil, false, err
	}

	valid := false
	for _, option := range poll.Options {
		if option.ID == optionID {
			valid = true
			break
		}
	}
	if !valid {
		return nil, false, errors.ErrOptionNotFound
	}

	vote, created, err := s.voteRepo.Cast(ctx, callerID, pollID, optionID)
	if err != nil {
		return nil, false, fmt.Errorf("cast vote: %w", err)
	}
	return vote, created, nil
}
