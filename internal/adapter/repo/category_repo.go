package repo

import (
	"context"
	"fmt"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// CategoryRepositoryPG implements CategoryRepository using PostgreSQL.
type CategoryRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCategoryRepository creates a new category repo.
func NewCategoryRepository(sql infra.SQLExecutor) *CategoryRepositoryPG {
	return &CategoryRepositoryPG{sql: sql}
}

// Create inserts a category; existing names are left untouched.
func (r *CategoryRepositoryPG) Create(ctx context.Context, category *domain.Category) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertCategory,
		category.ID,
		category.Name,
		category.Description,
		category.Color,
		category.Icon,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID returns the category or domain.ErrNotFound.
func (r *CategoryRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectCategoryByID, id)
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.Icon, &c.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select category: %w", err)
	}
	return &c, nil
}

// List returns all categories ordered by name.
func (r *CategoryRepositoryPG) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCategories)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.Icon, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.CategoryRepository = (*CategoryRepositoryPG)(nil)
