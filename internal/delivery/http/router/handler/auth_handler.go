package handler

import (
	"net/http"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/response"
	"stampcard/internal/domain/entity"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for identity-related handlers.
type AuthHandler struct {
	uc usecase.IdentityUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.IdentityUsecase) *AuthHandler {
	return &AuthHandler{
		uc: uc,
	}
}

// LoginRequest is the phone-number resolution input.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// Login resolves a phone number to an identity and a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	identity, err := h.uc.Resolve(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity, "Login successful")
}

// Recompute recounts the customer's coupon rows and rewrites the cached
// counter, returning the refreshed identity.
func (h *AuthHandler) Recompute(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	customer, err := h.uc.RecomputeCounters(c.Request().Context(), *customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Counters recomputed")
}

// Me returns the refreshed session identity. Guests get their synthesized
// identity back; registered customers get a fresh row read.
func (h *AuthHandler) Me(c echo.Context) error {
	customerID := middleware.CustomerID(c)
	if customerID == nil {
		guest := entity.NewGuest(middleware.PhoneNumber(c))

		return response.Success(c, http.StatusOK, guest, "")
	}

	customer, err := h.uc.Refresh(c.Request().Context(), *customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "")
}
