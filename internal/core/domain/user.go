package domain

import (
	"strings"
	"time"
)

// User models a registered account. Email is the login identifier and is
// always stored lowercase and trimmed. PasswordHash never crosses the API
// boundary.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Country      string    `json:"country,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Roles        []Role    `json:"roles"`
}

// NormalizeEmail returns the canonical storage/lookup form of an email
// address: trimmed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RoleNames returns the display names of the user's roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// HasRole reports whether the user holds the given role, compared by
// canonical name.
func (u *User) HasRole(name string) bool {
	key := CanonicalRoleName(name)
	for _, r := range u.Roles {
		if CanonicalRoleName(r.Name) == key {
			return true
		}
	}
	return false
}
