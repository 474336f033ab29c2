// Package middleware contains the echo middleware of the HTTP delivery.
package middleware

import (
	"strings"

	"stampcard/internal/delivery/http/response"
	"stampcard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate.
const (
	ContextKeyCustomerID  = "customerID"
	ContextKeyPhoneNumber = "phoneNumber"
	ContextKeyIsGuest     = "isGuest"
)

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and puts the session identity on
// the context. Guests carry a nil customer id.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(ContextKeyCustomerID, claims.CustomerID)
		c.Set(ContextKeyPhoneNumber, claims.PhoneNumber)
		c.Set(ContextKeyIsGuest, claims.Guest)

		return next(c)
	}
}

// RequireRegistered rejects guest sessions. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireRegistered(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if guest, ok := c.Get(ContextKeyIsGuest).(bool); !ok || guest {
			return response.Forbidden(c, "GUEST_NOT_ALLOWED", "This action requires a registered customer")
		}

		return next(c)
	}
}

// CustomerID extracts the session customer id from the context; nil for
// guests.
func CustomerID(c echo.Context) *uuid.UUID {
	if id, ok := c.Get(ContextKeyCustomerID).(*uuid.UUID); ok {
		return id
	}

	return nil
}

// PhoneNumber extracts the session phone number from the context.
func PhoneNumber(c echo.Context) string {
	if phone, ok := c.Get(ContextKeyPhoneNumber).(string); ok {
		return phone
	}

	return ""
}

// IsGuest reports whether the session belongs to a guest.
func IsGuest(c echo.Context) bool {
	guest, ok := c.Get(ContextKeyIsGuest).(bool)

	return !ok || guest
}
