// internal/pkg/auth/password.go
package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/Zevk4/levelup-store/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// PasswordManager handles credential comparison and hashing. The
// preloaded credential table ships with plaintext passwords, so Verify
// accepts both plaintext entries and bcrypt hashes; hashing on
// registration is opt-in via SECURITY_HASH_PASSWORDS.
type PasswordManager struct {
	cost           int
	hashOnRegister bool
}

// NewPasswordManager creates a new password manager
func NewPasswordManager(cfg *config.Config) *PasswordManager {
	return &PasswordManager{
		cost:           cfg.Security.BcryptCost,
		hashOnRegister: cfg.Security.HashPasswords,
	}
}

// Hash hashes a password using bcrypt
func (p *PasswordManager) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored credential. Bcrypt
// hashes get a bcrypt comparison; anything else is compared as plaintext
// in constant time.
func (p *PasswordManager) Verify(password, stored string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

// HashOnRegister reports whether newly registered passwords should be
// stored hashed.
func (p *PasswordManager) HashOnRegister() bool {
	return p.hashOnRegister
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
