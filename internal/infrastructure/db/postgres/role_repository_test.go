package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userhub/identity-api/internal/core/domain"
)

func newRoleRepoMock(t *testing.T) (*RoleRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRoleRepository(mock), mock
}

func TestRoleRepository_FindAll(t *testing.T) {
	repo, mock := newRoleRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM roles ORDER BY id`)).
		WillReturnRows(mock.NewRows([]string{"id", "name", "description"}).
			AddRow(int64(1), domain.RoleGeneralUser, "Default role").
			AddRow(int64(4), domain.RoleAdmin, ""))

	roles, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, domain.RoleGeneralUser, roles[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_FindByKey_NotFound(t *testing.T) {
	repo, mock := newRoleRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM roles WHERE name_key = $1`)).
		WithArgs("SUPERHERO").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByKey(context.Background(), "SUPERHERO")
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_FindByKeys(t *testing.T) {
	repo, mock := newRoleRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE name_key = ANY($1)`)).
		WithArgs([]string{"GENERAL USER", "ADMIN"}).
		WillReturnRows(mock.NewRows([]string{"id", "name", "description"}).
			AddRow(int64(1), domain.RoleGeneralUser, "").
			AddRow(int64(4), domain.RoleAdmin, ""))

	roles, err := repo.FindByKeys(context.Background(), []string{"GENERAL USER", "ADMIN"})
	require.NoError(t, err)
	assert.Len(t, roles, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The canonical key column is derived from the display name on every write.
func TestRoleRepository_Create_StoresCanonicalKey(t *testing.T) {
	repo, mock := newRoleRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO roles (name, name_key, description)`)).
		WithArgs("Moderator", "MODERATOR", "forum moderation").
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(5)))

	role, err := repo.Create(context.Background(), &domain.Role{Name: "Moderator", Description: "forum moderation"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), role.ID)
	assert.Equal(t, "Moderator", role.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newRoleRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO roles`)).
		WillReturnError(uniqueErr("roles_name_key_key"))

	_, err := repo.Create(context.Background(), &domain.Role{Name: "MODERATOR"})
	assert.ErrorIs(t, err, domain.ErrRoleExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRoleRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE roles SET`)).
		WithArgs("Moderator", "MODERATOR", "", int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &domain.Role{ID: 99, Name: "Moderator"})
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_Delete(t *testing.T) {
	repo, mock := newRoleRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM roles WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_CountUsers(t *testing.T) {
	repo, mock := newRoleRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM user_roles WHERE role_id = $1`)).
		WithArgs(int64(5)).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountUsers(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
