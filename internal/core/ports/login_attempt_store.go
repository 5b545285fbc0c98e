package ports

import "context"

// LoginAttemptStore tracks consecutive failed logins per account so the auth
// service can throttle brute-force attempts. Counters expire on their own
// after the configured window.
type LoginAttemptStore interface {
	// RecordFailure increments the failure counter and returns the new count.
	RecordFailure(ctx context.Context, email string) (int64, error)
	// Failures returns the current failure count (0 when none recorded).
	Failures(ctx context.Context, email string) (int64, error)
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
