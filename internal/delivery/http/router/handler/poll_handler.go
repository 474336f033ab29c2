package handler

import (
	"net/http"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/response"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PollHandler holds dependencies for poll handlers.
type PollHandler struct {
	uc usecase.VoteUsecase
}

// NewPollHandler is the constructor for PollHandler, injected by Fx.
func NewPollHandler(uc usecase.VoteUsecase) *PollHandler {
	return &PollHandler{
		uc: uc,
	}
}

// SubmitResponseRequest carries the final selection of a vote.
type SubmitResponseRequest struct {
	SelectedOptions []int64 `json:"selected_options" validate:"required"`
}

// List returns the polls currently accepting responses.
func (h *PollHandler) List(c echo.Context) error {
	polls, err := h.uc.ListOpenPolls(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, polls, "")
}

// MyResponse returns the customer's existing response, or null when they
// have not voted. Guests never have one.
func (h *PollHandler) MyResponse(c echo.Context) error {
	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_POLL_ID", "Invalid poll id")
	}

	customerID := middleware.CustomerID(c)
	if customerID == nil {
		return response.Success(c, http.StatusOK, nil, "")
	}

	myResponse, err := h.uc.LoadMyResponse(c.Request().Context(), pollID, *customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, myResponse, "")
}

// Tally returns per-option counts and the distinct respondent total.
func (h *PollHandler) Tally(c echo.Context) error {
	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_POLL_ID", "Invalid poll id")
	}

	tally, err := h.uc.Tally(c.Request().Context(), pollID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tally, "")
}

// Submit stores the customer's selection, revising any previous one.
func (h *PollHandler) Submit(c echo.Context) error {
	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_POLL_ID", "Invalid poll id")
	}

	var req SubmitResponseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	customerID := middleware.CustomerID(c)
	submitted, err := h.uc.Submit(c.Request().Context(), pollID, *customerID, req.SelectedOptions)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submitted, "Vote recorded")
}
