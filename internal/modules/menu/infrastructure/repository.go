package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"addisKitchen/internal/modules/menu/domain"
	"addisKitchen/internal/shared/apperr"
)

const itemColumns = `id, name, description, price, image_url, is_vegetarian,
	is_spicy, is_available, ingredients, category_id, display_order`

// Repository persists the menu catalog in Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) ListCategories(ctx context.Context) ([]domain.MenuCategory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, display_order
		FROM menu_categories
		ORDER BY display_order`)
	if err != nil {
		return nil, apperr.Storage("list categories", err)
	}
	defer rows.Close()

	var categories []domain.MenuCategory
	for rows.Next() {
		var c domain.MenuCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.DisplayOrder); err != nil {
			return nil, apperr.Storage("scan category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list categories", err)
	}
	return categories, nil
}

// ListAvailableItems returns only items visible to the public surface, in
// display order.
func (r *Repository) ListAvailableItems(ctx context.Context) ([]domain.MenuItem, error) {
	return r.listItems(ctx, `WHERE is_available ORDER BY display_order`)
}

// ListItems returns every item, available or not, for the admin surface.
func (r *Repository) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	return r.listItems(ctx, `ORDER BY display_order`)
}

func (r *Repository) listItems(ctx context.Context, clause string) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itemColumns+` FROM menu_items `+clause)
	if err != nil {
		return nil, apperr.Storage("list menu items", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list menu items", err)
	}
	return items, nil
}

func (r *Repository) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM menu_items WHERE id = $1`, id)
	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("menu item %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO menu_items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
		item.IsVegetarian,
		item.IsSpicy,
		item.IsAvailable,
		item.Ingredients,
		item.CategoryID,
		item.DisplayOrder,
	)
	if err != nil {
		return apperr.Storage("insert menu item", err)
	}
	return nil
}

func (r *Repository) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE menu_items SET
			name = $2, description = $3, price = $4, image_url = $5,
			is_vegetarian = $6, is_spicy = $7, is_available = $8,
			ingredients = $9, category_id = $10, display_order = $11
		WHERE id = $1`,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.ImageURL,
		item.IsVegetarian,
		item.IsSpicy,
		item.IsAvailable,
		item.Ingredients,
		item.CategoryID,
		item.DisplayOrder,
	)
	if err != nil {
		return apperr.Storage("update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s: %w", item.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *Repository) DeleteItem(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage("delete menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func scanItem(row pgx.Row) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.ImageURL,
		&item.IsVegetarian,
		&item.IsSpicy,
		&item.IsAvailable,
		&item.Ingredients,
		&item.CategoryID,
		&item.DisplayOrder,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return item, err
	}
	if err != nil {
		return item, apperr.Storage("scan menu item", err)
	}
	return item, nil
}
