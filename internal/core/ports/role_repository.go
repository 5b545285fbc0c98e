package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

// RoleRepository defines the persistence contract for the role catalog.
// All name lookups take the canonical key (domain.CanonicalRoleName); the
// stored display name keeps its original casing.
type RoleRepository interface {
	FindAll(ctx context.Context) ([]domain.Role, error)
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	FindByKey(ctx context.Context, key string) (*domain.Role, error)
	FindByKeys(ctx context.Context, keys []string) ([]domain.Role, error)
	ExistsByKey(ctx context.Context, key string) (bool, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id int64) error
	// CountUsers reports how many users currently hold the role. Modeled as a
	// query rather than a loaded collection to keep role reads bounded.
	CountUsers(ctx context.Context, id int64) (int64, error)
}
