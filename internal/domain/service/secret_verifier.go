package service

// SecretVerifier defines the interface for checking the shared admin
// redemption secret against its configured hash.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type SecretVerifier interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(secret string) (string, error)

	// Verify compares a plaintext secret with a hash to see if they match.
	Verify(secret, hash string) bool
}
