package services

import (
	"context"
	"math"
	"time"

	"vibe-shop/models"
)

// CatalogRepository is the read-only product store.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	PricesByIDs(ctx context.Context, ids []int) (map[int]float64, error)
}

// CartRepository owns all cart mutations.
type CartRepository interface {
	ListLines(ctx context.Context) ([]models.CartItem, error)
	Upsert(ctx context.Context, productID, qty int, addedAt time.Time) (int64, int, error)
	SetQty(ctx context.Context, id int64, qty int) (bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
	Clear(ctx context.Context) error
}

// ReceiptMailer sends the post-checkout confirmation email.
type ReceiptMailer interface {
	SendReceipt(receipt *models.Receipt) error
}

// round2 rounds to currency precision (two decimal places). Cart listing
// applies it per line and again on the sum so totals match what a client
// rendering rounded subtotals would compute.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
