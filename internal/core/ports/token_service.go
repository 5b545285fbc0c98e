package ports

import "time"

// TokenClaims is the identity carried inside an issued bearer token.
type TokenClaims struct {
	UserID    int64
	Email     string
	Roles     []string
	ExpiresAt time.Time
}

// TokenService issues and validates signed bearer tokens. Every failure path
// (parse, signature, expiry) is treated as invalid, never as valid.
type TokenService interface {
	Issue(userID int64, email string, roles []string) (string, error)
	Parse(token string) (*TokenClaims, error)
	IsValid(token, expectedSubject string) bool
	IsExpired(token string) bool
}
