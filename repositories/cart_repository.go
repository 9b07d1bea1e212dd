package repositories

import (
	"context"
	"time"

	"vibe-shop/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

// ListLines joins every cart line with its product's current name and price.
// Subtotals are computed by the service, not stored.
func (r *CartRepository) ListLines(ctx context.Context) ([]models.CartItem, error) {
	query := `
		SELECT c.id, c.product_id, p.name, p.price, c.qty
		FROM cart c
		JOIN products p ON p.id = c.product_id
		ORDER BY c.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var it models.CartItem
		if err := rows.Scan(&it.CartID, &it.ProductID, &it.Name, &it.Price, &it.Qty); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Upsert adds qty to the product's line, creating it if absent. The UNIQUE
// constraint on product_id makes concurrent adds merge instead of racing
// into duplicate lines. Returns the line id and the post-merge quantity.
func (r *CartRepository) Upsert(ctx context.Context, productID, qty int, addedAt time.Time) (int64, int, error) {
	query := `
		INSERT INTO cart (product_id, qty, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id)
		DO UPDATE SET qty = cart.qty + EXCLUDED.qty, added_at = EXCLUDED.added_at
		RETURNING id, qty`

	var id int64
	var newQty int
	if err := r.db.QueryRow(ctx, query, productID, qty, addedAt).Scan(&id, &newQty); err != nil {
		return 0, 0, err
	}
	return id, newQty, nil
}

// SetQty replaces the quantity of a line. Returns false when no such line
// exists.
func (r *CartRepository) SetQty(ctx context.Context, id int64, qty int) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE cart SET qty = $1 WHERE id = $2`, qty, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Remove deletes a line. Returns false when no such line exists.
func (r *CartRepository) Remove(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Clear wipes the whole cart. The schema has no per-shopper key, so checkout
// clears every line.
func (r *CartRepository) Clear(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart`)
	return err
}
