package postgres

import (
	"context"
	"fmt"
)

// Uniqueness of email, phone and role key is enforced here, not only by the
// service-layer pre-checks: two concurrent registrations can both pass the
// pre-check, and the loser must hit one of these constraints.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	phone_number  TEXT,
	country       TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT users_email_key UNIQUE (email),
	CONSTRAINT users_phone_number_key UNIQUE (phone_number)
);

CREATE TABLE IF NOT EXISTS roles (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	name_key    TEXT NOT NULL,
	description TEXT,
	CONSTRAINT roles_name_key_key UNIQUE (name_key)
);

CREATE TABLE IF NOT EXISTS user_roles (
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	role_id BIGINT NOT NULL REFERENCES roles(id),
	PRIMARY KEY (user_id, role_id)
);

CREATE INDEX IF NOT EXISTS idx_user_roles_role_id ON user_roles(role_id);
CREATE INDEX IF NOT EXISTS idx_users_country ON users(country);
`

// Migrate applies the schema. Safe to run on every startup.
func Migrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
