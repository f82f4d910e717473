package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/todoboard/core/internal/application/services"
)

// Schema DDL. The same statements live in migrations/ for golang-migrate;
// Bootstrap exists for the destructive development reset.
var schemaStatements = []string{
	`DROP TABLE IF EXISTS todo_tags`,
	`DROP TABLE IF EXISTS todos`,
	`DROP TABLE IF EXISTS tags`,
	`DROP TABLE IF EXISTS users`,
	`CREATE TABLE users (
		id         BIGSERIAL PRIMARY KEY,
		login      VARCHAR(20)  NOT NULL UNIQUE,
		password   VARCHAR(256) NOT NULL,
		name       VARCHAR(50)  NOT NULL,
		email      VARCHAR(100) NOT NULL UNIQUE,
		is_admin   BOOLEAN      NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ,
		is_deleted INTEGER      NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE todos (
		id          BIGSERIAL PRIMARY KEY,
		title       VARCHAR(100) NOT NULL,
		description VARCHAR(500),
		status      VARCHAR(20)  NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'in_progress', 'completed')),
		due_date    TIMESTAMPTZ,
		priority    INTEGER      NOT NULL DEFAULT 1,
		user_id     BIGINT       NOT NULL REFERENCES users(id),
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		deleted_at  TIMESTAMPTZ,
		is_deleted  INTEGER      NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE tags (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(50)  NOT NULL UNIQUE,
		description VARCHAR(200),
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		deleted_at  TIMESTAMPTZ,
		is_deleted  INTEGER      NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE todo_tags (
		id         BIGSERIAL PRIMARY KEY,
		todo_id    BIGINT NOT NULL REFERENCES todos(id),
		tag_id     BIGINT NOT NULL REFERENCES tags(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ,
		is_deleted INTEGER NOT NULL DEFAULT 0,
		UNIQUE (todo_id, tag_id)
	)`,
}

// Bootstrap drops and recreates the whole schema, then loads the fixed seed
// dataset. Destructive; intended for development only.
func (db *DB) Bootstrap(ctx context.Context) error {
	return db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("bootstrap schema: %w", err)
			}
		}
		return seed(ctx, tx)
	})
}

func seed(ctx context.Context, tx *sqlx.Tx) error {
	users := []struct {
		login, password, name, email string
		isAdmin                      bool
	}{
		{"admin", "admin", "Administrator", "admin@example.com", true},
		{"john", "123456", "John Doe", "john@example.com", false},
		{"jane", "123456", "Jane Smith", "jane@example.com", false},
	}

	userIDs := make(map[string]int64, len(users))
	for _, u := range users {
		var id int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO users (login, password, name, email, is_admin)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			u.login, services.HashPassword(u.password), u.name, u.email, u.isAdmin,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.login, err)
		}
		userIDs[u.login] = id
	}

	tagIDs := make(map[string]int64, 3)
	for _, name := range []string{"work", "personal", "study"} {
		var id int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO tags (name) VALUES ($1) RETURNING id`, name,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed tag %s: %w", name, err)
		}
		tagIDs[name] = id
	}

	todos := []struct {
		title, description, owner string
		tags                      []string
	}{
		{"Finish the project report", "Finish the final report for project ABC.", "john", []string{"work", "personal"}},
		{"Buy groceries", "Milk, eggs and bread.", "john", []string{"personal", "study"}},
		{"Team meeting", "Discuss project progress with the team.", "jane", []string{"work"}},
	}

	for _, t := range todos {
		var todoID int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO todos (title, description, user_id)
			 VALUES ($1, $2, $3) RETURNING id`,
			t.title, t.description, userIDs[t.owner],
		).Scan(&todoID)
		if err != nil {
			return fmt.Errorf("seed todo %q: %w", t.title, err)
		}

		for _, tag := range t.tags {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO todo_tags (todo_id, tag_id) VALUES ($1, $2)`,
				todoID, tagIDs[tag],
			); err != nil {
				return fmt.Errorf("seed todo_tag %q/%s: %w", t.title, tag, err)
			}
		}
	}

	return nil
}
