package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/todoboard/core/internal/domain/entities"
	"github.com/todoboard/core/internal/ports"
)

// TagRepositoryImpl implements the TagRepository interface
type TagRepositoryImpl struct {
	db *sqlx.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *sqlx.DB) ports.TagRepository {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *entities.Tag) error {
	query := `
		INSERT INTO tags (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		tag.Name, tag.Description,
	).Scan(&tag.ID, &tag.CreatedAt, &tag.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create tag: %w", err)
	}

	return nil
}

func (r *TagRepositoryImpl) GetByName(ctx context.Context, name string) (*entities.Tag, error) {
	query := `
		SELECT id, name, description,
			created_at, updated_at, deleted_at, is_deleted
		FROM tags
		WHERE name = $1 AND deleted_at IS NULL`

	var tag entities.Tag
	err := r.db.GetContext(ctx, &tag, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTagNotFound
		}
		return nil, fmt.Errorf("get tag by name: %w", err)
	}

	return &tag, nil
}

func (r *TagRepositoryImpl) List(ctx context.Context) ([]*entities.Tag, error) {
	query := `
		SELECT id, name, description,
			created_at, updated_at, deleted_at, is_deleted
		FROM tags
		WHERE deleted_at IS NULL
		ORDER BY id`

	var tags []*entities.Tag
	err := r.db.SelectContext(ctx, &tags, query)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}
