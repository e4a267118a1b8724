package auth

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used for generated secret hashes.
const DefaultCost = 14

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

// HashPasswordWithCost hashes a password using bcrypt at the given cost
func HashPasswordWithCost(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// SharedSecret is the single process-wide credential guarding seed updates.
// It is configured either as a plain value or as a bcrypt hash; when both
// are set the hash wins.
type SharedSecret struct {
	plain string
	hash  string
}

// NewSharedSecret builds a SharedSecret from its configured forms.
func NewSharedSecret(plain, hash string) SharedSecret {
	return SharedSecret{plain: plain, hash: hash}
}

// Configured reports whether any secret was provided.
func (s SharedSecret) Configured() bool {
	return s.plain != "" || s.hash != ""
}

// Verify checks a caller-supplied credential. An unconfigured secret and an
// empty credential never verify.
func (s SharedSecret) Verify(credential string) bool {
	if credential == "" || !s.Configured() {
		return false
	}
	if s.hash != "" {
		return CheckPasswordHash(credential, s.hash)
	}

	// Compare digests so the comparison is constant-time regardless of length
	expected := sha256.Sum256([]byte(s.plain))
	provided := sha256.Sum256([]byte(credential))
	return hmac.Equal(provided[:], expected[:])
}
