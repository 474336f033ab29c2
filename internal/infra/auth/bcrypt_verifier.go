package auth

import (
	"golang.org/x/crypto/bcrypt"

	"stampcard/internal/domain/service"
)

// bcryptVerifier is a concrete implementation of the SecretVerifier
// interface using bcrypt. The redemption secret is configured as a bcrypt
// hash, never as plaintext.
type bcryptVerifier struct{}

// NewBcryptVerifier is the constructor for bcryptVerifier.
func NewBcryptVerifier() service.SecretVerifier {
	return &bcryptVerifier{}
}

// Hash generates a salted hash from a plaintext secret.
// bcrypt automatically handles salt generation.
func (v *bcryptVerifier) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)

	return string(bytes), err
}

// Verify compares a plaintext secret with a bcrypt hash.
func (v *bcryptVerifier) Verify(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	// err is nil if the secret and hash match.
	return err == nil
}
