package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// allowedSpecials is the special-character set the password policy accepts.
const allowedSpecials = "@$!%*?&_#"

const (
	minPasswordLen = 8
	maxPasswordLen = 100
)

// PasswordService implements credential hashing and the strength policy on
// top of bcrypt.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the given bcrypt cost.
// Costs outside bcrypt's valid range fall back to 12.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 12
	}
	return &PasswordService{cost: cost}
}

// Hash returns a salted bcrypt hash of plaintext. Two calls with the same
// input produce different hashes; both verify.
func (s *PasswordService) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
func (s *PasswordService) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// MeetsPolicy reports whether plaintext satisfies the strength policy:
// 8-100 characters, at least one lowercase letter, one uppercase letter, one
// digit and one special from allowedSpecials, with every character drawn from
// that alphabet.
func (s *PasswordService) MeetsPolicy(plaintext string) bool {
	if len(plaintext) < minPasswordLen || len(plaintext) > maxPasswordLen {
		return false
	}

	var lower, upper, digit, special bool
	for _, c := range plaintext {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune(allowedSpecials, c):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
