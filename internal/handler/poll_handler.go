package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/harshG775/voting-poll-server/internal/auth"
	"github.com/harshG775/voting-poll-server/internal/errors"
	"github.com/harshG775/voting-poll-server/internal/repository"
	"github.com/harshG775/voting-poll-server/internal/service"
)

// PollHandler handles poll CRUD and voting endpoints.
type PollHandler struct {
	pollService service.PollService
}

// NewPollHandler creates a new poll handler.
func NewPollHandler(pollService service.PollService) *PollHandler {
	return &PollHandler{pollService: pollService}
}

// OptionPayload is one option of a submitted poll.
type OptionPayload struct {
	Text string `json:"text" validate:"required"`
}

// PollPayload is the poll body of a create request.
type PollPayload struct {
	Title          string          `json:"title" validate:"required"`
	Options        []OptionPayload `json:"options" validate:"min=1,dive"`
	VotingStartsAt *time.Time      `json:"votingStartsAt"`
	VotingEndsAt   *time.Time      `json:"votingEndsAt"`
}

// CreatePollRequest represents a poll creation request.
type CreatePollRequest struct {
	Poll PollPayload `json:"poll"`
}

// VoteRequest represents a vote submission.
type VoteRequest struct {
	OptionID string `json:"optionId" validate:"required,uuid"`
}

// Create godoc
// @Summary Create a poll with its options
// @Tags polls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePollRequest true "Poll data"
// @Success 201 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /polls [post]
func (h *PollHandler) Create(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return fail(c, errors.ErrUserNotFound)
	}

	var req CreatePollRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	options := make([]string, 0, len(req.Poll.Options))
	for _, option := range req.Poll.Options {
		options = append(options, option.Text)
	}

	poll, err := h.pollService.Create(c.Request().Context(), user.ID, service.CreatePollInput{
		Title:          req.Poll.Title,
		Options:        options,
		VotingStartsAt: req.Poll.VotingStartsAt,
		VotingEndsAt:   req.Poll.VotingEndsAt,
	})
	if err != nil {
		return fail(c, err)
	}

	return respond(c, http.StatusCreated, "Poll was created", poll)
}

// List godoc
// @Summary List the caller's polls
// @Tags polls
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Param order query string false "asc or desc on creation time"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /polls [get]
func (h *PollHandler) List(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return fail(c, errors.ErrUserNotFound)
	}

	var params repository.ListPollsParams
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "Invalid offset")
		}
		params.Offset = &offset
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "Invalid limit")
		}
		params.Limit = &limit
	}
	if raw := c.QueryParam("order"); raw != "" {
		// anything but asc means desc, matching the original contract
		if raw == "asc" {
			params.Order = "asc"
		} else {
			params.Order = "desc"
		}
	}

	polls, err := h.pollService.List(c.Request().Context(), user.ID, params)
	if err != nil {
		return fail(c, err)
	}

	return respond(c, http.StatusOK, "Polls fetched", polls)
}

// Get godoc
// @Summary Fetch one of the caller's polls
// @Tags polls
// @Produce json
// @Security BearerAuth
// @Param pollId path string true "Poll ID"
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /polls/{pollId} [get]
func (h *PollHandler) Get(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return fail(c, errors.ErrUserNotFound)
	}

	pollID, err := uuid.Parse(c.Param("pollId"))
	if err != nil {
		return badRequest(c, "Invalid poll id")
	}

	poll, err := h.pollService.Get(c.Request().Context(), user.ID, pollID)
	if err != nil {
		return fail(c, err)
	}

	return respond(c, http.StatusOK, "Poll fetched", poll)
}

// Delete godoc
// @Summary Delete one of the caller's polls
// @Tags polls
// @Produce json
// @Security BearerAuth
// @Param pollId path string true "Poll ID"
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /polls/{pollId} [delete]
func (h *PollHandler) Delete(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return fail(c, errors.ErrUserNotFound)
	}

	pollID, err := uuid.Parse(c.Param("pollId"))
	if err != nil {
		return badRequest(c, "Invalid poll id")
	}

	poll, err := h.pollService.Delete(c.Request().Context(), user.ID, pollID)
	if err != nil {
		return fail(c, err)
	}

	return respond(c, http.StatusOK, "Poll deleted", poll)
}

// Vote godoc
// @Summary Cast or change a vote on one of the caller's polls
// @Tags polls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pollId path string true "Poll ID"
// @Param request body VoteRequest true "Chosen option"
// @Success 200 {object} Envelope
// @Success 201 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /polls/{pollId}/vote [post]
func (h *PollHandler) Vote(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return fail(c, errors.ErrUserNotFound)
	}

	pollID, err := uuid.Parse(c.Param("pollId"))
	if err != nil {
		return badRequest(c, "Invalid poll id")
	}

	var req VoteRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	optionID, err := uuid.Parse(req.OptionID)
	if err != nil {
		return badRequest(c, "Invalid option id")
	}

	vote, created, err := h.pollService.Vote(c.Request().Context(), user.ID, pollID, optionID)
	if err != nil {
		return fail(c, err)
	}

	if created {
		return respond(c, http.StatusCreated, "Vote was created", vote)
	}
	return respond(c, http.StatusOK, "Vote was updated", vote)
}
