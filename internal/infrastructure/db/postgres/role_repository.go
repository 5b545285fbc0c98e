package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/userhub/identity-api/internal/core/domain"
)

// RoleRepository persists the role catalog in PostgreSQL. The display name
// and the canonical lookup key are stored in separate columns; only the key
// carries the unique constraint.
type RoleRepository struct {
	db DB
}

func NewRoleRepository(db DB) *RoleRepository {
	return &RoleRepository{db: db}
}

const roleColumns = `id, name, COALESCE(description, '')`

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	return scanRoles(rows)
}

func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *RoleRepository) FindByKey(ctx context.Context, key string) (*domain.Role, error) {
	return r.findOne(ctx, `WHERE name_key = $1`, key)
}

func (r *RoleRepository) FindByKeys(ctx context.Context, keys []string) ([]domain.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roleColumns+` FROM roles WHERE name_key = ANY($1) ORDER BY id`, keys)
	if err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	defer rows.Close()
	return scanRoles(rows)
}

func (r *RoleRepository) ExistsByKey(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM roles WHERE name_key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return exists, nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO roles (name, name_key, description) VALUES ($1, $2, NULLIF($3, '')) RETURNING id`,
		role.Name, domain.CanonicalRoleName(role.Name), role.Description,
	).Scan(&role.ID)
	if err != nil {
		return nil, mapRoleConflict(err)
	}
	return role, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE roles SET name = $1, name_key = $2, description = NULLIF($3, '') WHERE id = $4`,
		role.Name, domain.CanonicalRoleName(role.Name), role.Description, role.ID,
	)
	if err != nil {
		return mapRoleConflict(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

// CountUsers reports how many users hold the role; used by the delete guard.
func (r *RoleRepository) CountUsers(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_roles WHERE role_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count role users: %w", err)
	}
	return count, nil
}

func (r *RoleRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Role, error) {
	var role domain.Role
	err := r.db.QueryRow(ctx, `SELECT `+roleColumns+` FROM roles `+where, args...).Scan(
		&role.ID, &role.Name, &role.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &role, nil
}

func scanRoles(rows pgx.Rows) ([]domain.Role, error) {
	roles := []domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan roles: %w", err)
	}
	return roles, nil
}

func mapRoleConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "roles_name_key_key" {
		return domain.ErrRoleExists
	}
	return fmt.Errorf("persist role: %w", err)
}
