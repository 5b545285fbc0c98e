package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

type RoleService interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	ListRoleNames(ctx context.Context) ([]string, error)
	GetRole(ctx context.Context, id int64) (*domain.Role, error)
	GetRoleByName(ctx context.Context, name string) (*domain.Role, error)
	// ResolveRoles returns the role entities for all requested names and fails
	// with domain.ErrInvalidRoles when any name does not exist; it never
	// partially assigns.
	ResolveRoles(ctx context.Context, names []string) ([]domain.Role, error)
	// ValidateRoleNames returns the subset of names that do not match any
	// existing role (empty when all are valid).
	ValidateRoleNames(ctx context.Context, names []string) ([]string, error)
	RoleExists(ctx context.Context, name string) (bool, error)
	CreateRole(ctx context.Context, name, description string) (*domain.Role, error)
	UpdateRole(ctx context.Context, id int64, name, description *string) (*domain.Role, error)
	DeleteRole(ctx context.Context, id int64) error
	// SeedDefaultRoles creates each missing default role. Idempotent; safe to
	// run on every startup.
	SeedDefaultRoles(ctx context.Context) error
}
