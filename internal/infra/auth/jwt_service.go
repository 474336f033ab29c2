// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"stampcard/config"
	"stampcard/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface
// using the JWT standard. One short-lived access token per session; there
// is no refresh flow, re-entering the phone number is the refresh.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    cfg.Loyalty.AccessTokenTTL,
	}, nil
}

// GenerateToken creates a session token for a resolved identity. Guest
// identities have no stable id, so the phone number is the subject and a
// guest flag marks the claims.
func (s *jwtService) GenerateToken(customerID *uuid.UUID, phoneNumber string, guest bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"phone": phoneNumber,
		"guest": guest,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}
	if customerID != nil {
		claims["sub"] = customerID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and extracts the
// session claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims")
	}

	phone, ok := mapClaims["phone"].(string)
	if !ok || phone == "" {
		return nil, errors.New("phone number missing from token")
	}
	guest, _ := mapClaims["guest"].(bool)

	claims := &service.SessionClaims{
		PhoneNumber: phone,
		Guest:       guest,
	}
	if sub, ok := mapClaims["sub"].(string); ok && sub != "" {
		id, err := uuid.Parse(sub)
		if err != nil {
			return nil, errors.Wrap(err, "invalid customer id in token")
		}
		claims.CustomerID = &id
	}

	return claims, nil
}
