package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
// Create must insert the user and its role links in a single transaction and
// surface storage-level unique violations as domain.ErrEmailExists /
// domain.ErrPhoneExists so concurrent registrations map to the same conflict
// the pre-checks produce.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByCountry(ctx context.Context, country string) ([]domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	Delete(ctx context.Context, id int64) error
}
