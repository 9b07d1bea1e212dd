package repositories

import (
	"context"
	"log"

	"vibe-shop/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, price, description, image FROM products ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Image); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// PricesByIDs returns the current price for each requested product that
// exists. Missing ids are simply absent from the map.
func (r *CatalogRepository) PricesByIDs(ctx context.Context, ids []int) (map[int]float64, error) {
	query := `SELECT id, price FROM products WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := map[int]float64{}
	for rows.Next() {
		var id int
		var price float64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}
	return prices, rows.Err()
}

// EnsureSeeded inserts the default catalog when the products table is empty.
// Re-running against a non-empty table is a no-op. Individual insert failures
// are logged and skipped so one bad row never aborts the rest.
func (r *CatalogRepository) EnsureSeeded(ctx context.Context) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Products table not empty (count = %d), skipping seed", count)
		return nil
	}

	query := `INSERT INTO products (id, name, price, description, image) VALUES ($1, $2, $3, $4, $5)`
	seeded := 0
	for _, p := range DefaultCatalog() {
		if _, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Price, p.Description, p.Image); err != nil {
			log.Printf("Seed insert error for product %d: %v", p.ID, err)
			continue
		}
		seeded++
	}
	log.Printf("Seeded %d products", seeded)
	return nil
}
