package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/identity-api/internal/core/domain"
)

// stubAttempts is an in-memory LoginAttemptStore without expiry.
type stubAttempts struct {
	counts map[string]int64
	err    error
}

func newStubAttempts() *stubAttempts {
	return &stubAttempts{counts: make(map[string]int64)}
}

func (s *stubAttempts) RecordFailure(_ context.Context, email string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.counts[email]++
	return s.counts[email], nil
}

func (s *stubAttempts) Failures(_ context.Context, email string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.counts[email], nil
}

func (s *stubAttempts) Reset(_ context.Context, email string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.counts, email)
	return nil
}

func newAuthServiceForTest(t *testing.T, attempts *stubAttempts) (*AuthService, *domain.User) {
	t.Helper()

	userSvc, _ := newUserServiceForTest(t)
	user, err := userSvc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	repo := userSvc.users
	tokens := NewTokenService("secret", time.Hour)

	var svc *AuthService
	if attempts != nil {
		svc = NewAuthService(repo, NewPasswordService(4), tokens, attempts, zerolog.Nop())
	} else {
		svc = NewAuthService(repo, NewPasswordService(4), tokens, nil, zerolog.Nop())
	}
	return svc, user
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, user := newAuthServiceForTest(t, nil)

	result, err := svc.Authenticate(context.Background(), "JOHN.DOE@example.com", "Valid1Pass!")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}
	if result.TokenType != "Bearer" {
		t.Fatalf("expected token type Bearer, got %q", result.TokenType)
	}
	if result.UserID != user.ID || result.Email != user.Email {
		t.Fatalf("unexpected identity: %+v", result)
	}
	if len(result.Roles) != 1 || result.Roles[0] != domain.RoleGeneralUser {
		t.Fatalf("unexpected roles: %v", result.Roles)
	}

	claims, err := NewTokenService("secret", time.Hour).Parse(result.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Email != user.Email || claims.UserID != user.ID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

// Unknown email and wrong password must both come back as the same error.
func TestAuthService_Authenticate_IndistinguishableFailures(t *testing.T) {
	svc, user := newAuthServiceForTest(t, nil)

	_, wrongPassword := svc.Authenticate(context.Background(), user.Email, "Wrong1Pass!")
	_, unknownEmail := svc.Authenticate(context.Background(), "nobody@example.com", "Valid1Pass!")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("failure messages must not differ: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestAuthService_Authenticate_Throttled(t *testing.T) {
	attempts := newStubAttempts()
	svc, user := newAuthServiceForTest(t, attempts)

	for i := 0; i < 5; i++ {
		if _, err := svc.Authenticate(context.Background(), user.Email, "Wrong1Pass!"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	// Even the correct password is rejected once the threshold is reached.
	if _, err := svc.Authenticate(context.Background(), user.Email, "Valid1Pass!"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Authenticate_ResetsCounterOnSuccess(t *testing.T) {
	attempts := newStubAttempts()
	svc, user := newAuthServiceForTest(t, attempts)

	for i := 0; i < 4; i++ {
		svc.Authenticate(context.Background(), user.Email, "Wrong1Pass!")
	}

	if _, err := svc.Authenticate(context.Background(), user.Email, "Valid1Pass!"); err != nil {
		t.Fatalf("login under threshold must succeed: %v", err)
	}
	if attempts.counts[user.Email] != 0 {
		t.Fatalf("counter should be reset, got %d", attempts.counts[user.Email])
	}
}

// A broken attempt store fails open rather than locking everyone out.
func TestAuthService_Authenticate_LimiterFailsOpen(t *testing.T) {
	attempts := newStubAttempts()
	attempts.err = errors.New("connection refused")
	svc, user := newAuthServiceForTest(t, attempts)

	result, err := svc.Authenticate(context.Background(), user.Email, "Valid1Pass!")
	if err != nil {
		t.Fatalf("expected login to succeed when limiter is down, got %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	svc, user := newAuthServiceForTest(t, nil)

	result, err := svc.GetCurrentUser(context.Background(), " JOHN.DOE@EXAMPLE.COM ")
	if err != nil {
		t.Fatalf("get current user failed: %v", err)
	}
	if result.Token != "" {
		t.Fatalf("no token should be issued")
	}
	if result.UserID != user.ID || result.FirstName != "John" || result.LastName != "Doe" {
		t.Fatalf("unexpected identity: %+v", result)
	}

	if _, err := svc.GetCurrentUser(context.Background(), "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
