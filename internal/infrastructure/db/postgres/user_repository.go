package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/userhub/identity-api/internal/core/domain"
)

const uniqueViolation = "23505"

// UserRepository persists user records and their role links in PostgreSQL.
type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user and its role links in a single transaction.
// Unique-constraint violations from a lost check-then-act race are mapped to
// the same conflict errors the service pre-checks produce.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, password_hash, phone_number, country, created_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)
		 RETURNING id`,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, user.PhoneNumber, user.Country, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return nil, mapUserConflict(err)
	}

	for _, role := range user.Roles {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`,
			user.ID, role.ID,
		); err != nil {
			return nil, fmt.Errorf("link role %d: %w", role.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapUserConflict(err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) FindByCountry(ctx context.Context, country string) ([]domain.User, error) {
	return r.findMany(ctx, `WHERE country = $1 ORDER BY id`, country)
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	return r.findMany(ctx, `ORDER BY id`)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE phone_number = $1)`, phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check phone: %w", err)
	}
	return exists, nil
}

// UpdateProfile persists the mutable profile fields. Email, password hash and
// roles are untouched.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, phone_number = NULLIF($3, ''), country = NULLIF($4, '')
		 WHERE id = $5`,
		user.FirstName, user.LastName, user.PhoneNumber, user.Country, user.ID,
	)
	if err != nil {
		return mapUserConflict(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the user; role links go with it via ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

const userColumns = `id, first_name, last_name, email, password_hash,
	COALESCE(phone_number, ''), COALESCE(country, ''), created_at`

func (r *UserRepository) findOne(ctx context.Context, where string, args ...any) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users `+where, args...).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.Country, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	roles, err := r.rolesFor(ctx, []int64{u.ID})
	if err != nil {
		return nil, err
	}
	u.Roles = roles[u.ID]
	if u.Roles == nil {
		u.Roles = []domain.Role{}
	}
	return &u, nil
}

func (r *UserRepository) findMany(ctx context.Context, tail string, args ...any) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	var ids []int64
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.Country, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
		ids = append(ids, u.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return []domain.User{}, nil
	}

	roles, err := r.rolesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Roles = roles[users[i].ID]
		if users[i].Roles == nil {
			users[i].Roles = []domain.Role{}
		}
	}
	return users, nil
}

// rolesFor loads the roles of the given users in one query.
func (r *UserRepository) rolesFor(ctx context.Context, userIDs []int64) (map[int64][]domain.Role, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ur.user_id, r.id, r.name, COALESCE(r.description, '')
		 FROM user_roles ur
		 JOIN roles r ON r.id = ur.role_id
		 WHERE ur.user_id = ANY($1)
		 ORDER BY r.id`,
		userIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.Role, len(userIDs))
	for rows.Next() {
		var userID int64
		var role domain.Role
		if err := rows.Scan(&userID, &role.ID, &role.Name, &role.Description); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		out[userID] = append(out[userID], role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	return out, nil
}

// mapUserConflict translates unique-constraint violations into domain
// conflict errors by constraint name.
func mapUserConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return domain.ErrEmailExists
		case "users_phone_number_key":
			return domain.ErrPhoneExists
		}
	}
	return fmt.Errorf("persist user: %w", err)
}
