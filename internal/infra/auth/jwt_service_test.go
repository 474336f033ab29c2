package auth

import (
	"testing"
	"time"

	"stampcard/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{
		Loyalty: &config.LoyaltyConfig{
			AccessTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	customerID := uuid.New()

	token, err := jwtService.GenerateToken(&customerID, "010-1234-5678", false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, customerID, *claims.CustomerID)
	assert.Equal(t, "010-1234-5678", claims.PhoneNumber)
	assert.False(t, claims.Guest)
}

func TestJWTService_GuestToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(nil, "010-9999-4321", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Nil(t, claims.CustomerID)
	assert.Equal(t, "010-9999-4321", claims.PhoneNumber)
	assert.True(t, claims.Guest)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	customerID := uuid.New()
	token, err := jwtService.GenerateToken(&customerID, "010-1234-5678", false)
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Loyalty.AccessTokenTTL = -time.Hour

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	customerID := uuid.New()
	token, err := jwtService.GenerateToken(&customerID, "010-1234-5678", false)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.SecretKey.Access = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}
