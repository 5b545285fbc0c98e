package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// RoleService implements CRUD and validation over the role catalog.
type RoleService struct {
	repo   ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, logger: logger}
}

func (s *RoleService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.repo.FindAll(ctx)
}

func (s *RoleService) ListRoleNames(ctx context.Context) ([]string, error) {
	roles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *RoleService) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoleService) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	return s.repo.FindByKey(ctx, domain.CanonicalRoleName(name))
}

// ResolveRoles returns the entities for all requested names. When any name is
// unknown the whole call fails with ErrInvalidRoles naming the offenders;
// roles are never partially assigned.
func (s *RoleService) ResolveRoles(ctx context.Context, names []string) ([]domain.Role, error) {
	keys := canonicalKeys(names)
	roles, err := s.repo.FindByKeys(ctx, keys)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(keys) {
		invalid, err := s.ValidateRoleNames(ctx, names)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRoles, strings.Join(invalid, ", "))
	}
	return roles, nil
}

// ValidateRoleNames returns the requested names that match no existing role.
func (s *RoleService) ValidateRoleNames(ctx context.Context, names []string) ([]string, error) {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		known[domain.CanonicalRoleName(r.Name)] = struct{}{}
	}

	var invalid []string
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := domain.CanonicalRoleName(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := known[key]; !ok {
			invalid = append(invalid, name)
		}
	}
	return invalid, nil
}

func (s *RoleService) RoleExists(ctx context.Context, name string) (bool, error) {
	return s.repo.ExistsByKey(ctx, domain.CanonicalRoleName(name))
}

func (s *RoleService) CreateRole(ctx context.Context, name, description string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	exists, err := s.repo.ExistsByKey(ctx, domain.CanonicalRoleName(name))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoleExists, name)
	}

	role, err := s.repo.Create(ctx, &domain.Role{Name: name, Description: strings.TrimSpace(description)})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("role", role.Name).Int64("role_id", role.ID).Msg("role created")
	return role, nil
}

// UpdateRole renames and/or re-describes a role. Nil fields are left
// untouched; a rename to an already-taken name is rejected.
func (s *RoleService) UpdateRole(ctx context.Context, id int64, name, description *string) (*domain.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil && strings.TrimSpace(*name) != "" {
		newName := strings.TrimSpace(*name)
		if domain.CanonicalRoleName(newName) != domain.CanonicalRoleName(role.Name) {
			exists, err := s.repo.ExistsByKey(ctx, domain.CanonicalRoleName(newName))
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, fmt.Errorf("%w: %s", domain.ErrRoleExists, newName)
			}
		}
		role.Name = newName
	}
	if description != nil {
		role.Description = strings.TrimSpace(*description)
	}

	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	s.logger.Info().Str("role", role.Name).Int64("role_id", role.ID).Msg("role updated")
	return role, nil
}

// DeleteRole removes a role unless it is still assigned to users or is one of
// the protected defaults.
func (s *RoleService) DeleteRole(ctx context.Context, id int64) error {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s is assigned to %d user(s)", domain.ErrRoleInUse, role.Name, count)
	}

	if domain.IsProtectedRole(role.Name) {
		return fmt.Errorf("%w: %s", domain.ErrProtectedRole, role.Name)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("role", role.Name).Int64("role_id", id).Msg("role deleted")
	return nil
}

// SeedDefaultRoles creates each missing default role. Idempotent.
func (s *RoleService) SeedDefaultRoles(ctx context.Context) error {
	for _, name := range domain.DefaultRoleNames {
		exists, err := s.repo.ExistsByKey(ctx, domain.CanonicalRoleName(name))
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := s.repo.Create(ctx, &domain.Role{Name: name, Description: domain.DefaultRoles[name]}); err != nil {
			return err
		}
		s.logger.Info().Str("role", name).Msg("default role created")
	}
	return nil
}

func canonicalKeys(names []string) []string {
	keys := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		key := domain.CanonicalRoleName(n)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
