package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

const tokenType = "Bearer"

// maxFailedLogins is the consecutive-failure threshold after which an account
// is throttled until its attempt counter expires.
const maxFailedLogins = 5

// AuthService authenticates credentials and issues bearer tokens.
type AuthService struct {
	users     ports.UserRepository
	passwords ports.PasswordService
	tokens    ports.TokenService
	attempts  ports.LoginAttemptStore
	logger    zerolog.Logger
}

// NewAuthService wires the auth service. attempts may be nil, in which case
// login throttling is disabled.
func NewAuthService(users ports.UserRepository, passwords ports.PasswordService, tokens ports.TokenService, attempts ports.LoginAttemptStore, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, passwords: passwords, tokens: tokens, attempts: attempts, logger: logger}
}

// Authenticate verifies credentials and returns a token plus identity.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = domain.NormalizeEmail(email)

	if s.throttled(ctx, email) {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists.
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwords.Verify(password, user.PasswordHash) {
		s.logger.Warn().Str("email", email).Msg("invalid password attempt")
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.RoleNames())
	if err != nil {
		return nil, err
	}

	s.resetFailures(ctx, email)
	s.logger.Info().Int64("user_id", user.ID).Str("email", email).Msg("user authenticated")

	return &ports.LoginResult{
		Token:     token,
		TokenType: tokenType,
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     user.RoleNames(),
	}, nil
}

// GetCurrentUser returns identity and roles for an authenticated subject
// without issuing a new token.
func (s *AuthService) GetCurrentUser(ctx context.Context, email string) (*ports.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     user.RoleNames(),
	}, nil
}

// throttled reports whether the account has exceeded the failure threshold.
// Limiter errors fail open: a broken counter store must not block logins.
func (s *AuthService) throttled(ctx context.Context, email string) bool {
	if s.attempts == nil {
		return false
	}
	n, err := s.attempts.Failures(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("login attempt store unavailable")
		return false
	}
	return n >= maxFailedLogins
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.attempts == nil {
		return
	}
	if _, err := s.attempts.RecordFailure(ctx, email); err != nil {
		s.logger.Error().Err(err).Msg("failed to record login attempt")
	}
}

func (s *AuthService) resetFailures(ctx context.Context, email string) {
	if s.attempts == nil {
		return
	}
	if err := s.attempts.Reset(ctx, email); err != nil {
		s.logger.Error().Err(err).Msg("failed to reset login attempts")
	}
}
