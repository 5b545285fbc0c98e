package ports

import "context"

// LoginResult is the identity payload returned after authentication.
type LoginResult struct {
	Token     string   `json:"token,omitempty"`
	TokenType string   `json:"token_type,omitempty"`
	UserID    int64    `json:"user_id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
}

type AuthService interface {
	// Authenticate verifies credentials and issues a bearer token. Unknown
	// email and wrong password both surface domain.ErrInvalidCredentials so
	// account existence is never leaked.
	Authenticate(ctx context.Context, email, password string) (*LoginResult, error)
	// GetCurrentUser returns identity and roles without issuing a new token.
	GetCurrentUser(ctx context.Context, email string) (*LoginResult, error)
}
