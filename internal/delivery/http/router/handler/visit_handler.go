package handler

import (
	"net/http"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/response"
	"stampcard/internal/domain/entity"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VisitHandler holds dependencies for visit-history handlers.
type VisitHandler struct {
	uc usecase.VisitUsecase
}

// NewVisitHandler is the constructor for VisitHandler, injected by Fx.
func NewVisitHandler(uc usecase.VisitUsecase) *VisitHandler {
	return &VisitHandler{
		uc: uc,
	}
}

// AttachCardRequest decorates a visit with a drawn card.
type AttachCardRequest struct {
	CardName string  `json:"card_name" validate:"required"`
	Review   *string `json:"review"`
}

// EditReviewRequest replaces the review text on a visit.
type EditReviewRequest struct {
	Review *string `json:"review"`
}

// List returns the customer's visits, newest first. Guests have no visit
// rows and get an empty list.
func (h *VisitHandler) List(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == nil {
		return response.Success(c, http.StatusOK, []*entity.Visit{}, "")
	}

	visits, err := h.uc.ListVisits(c.Request().Context(), *customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visits, "")
}

// Cards returns the card catalog.
func (h *VisitHandler) Cards(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ListCards(), "")
}

// AttachCard records the card drawn on a visit.
func (h *VisitHandler) AttachCard(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_VISIT_ID", "Invalid visit id")
	}

	var req AttachCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	customerID := middleware.CustomerID(c)
	if err := h.uc.AttachCard(c.Request().Context(), *customerID, visitID, req.CardName, req.Review); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Card attached")
}

// EditReview replaces the review text on a visit.
func (h *VisitHandler) EditReview(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_VISIT_ID", "Invalid visit id")
	}

	var req EditReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	customerID := middleware.CustomerID(c)
	if err := h.uc.EditReview(c.Request().Context(), *customerID, visitID, req.Review); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review updated")
}

// Delete removes a visit row.
func (h *VisitHandler) Delete(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_VISIT_ID", "Invalid visit id")
	}

	customerID := middleware.CustomerID(c)
	if err := h.uc.DeleteVisit(c.Request().Context(), *customerID, visitID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Visit deleted")
}
