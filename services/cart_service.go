package services

import (
	"context"
	"fmt"
	"time"

	"vibe-shop/models"
)

// CartService enforces the one-line-per-product invariant and computes cart
// totals from current catalog prices.
type CartService struct {
	cartRepo    CartRepository
	catalogRepo CatalogRepository
}

func NewCartService(cartRepo CartRepository, catalogRepo CatalogRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

type AddResult struct {
	CartID int64
	Qty    int
	Merged bool
}

// AddToCart creates a line for the product or merges qty into the existing
// one (additive, never a set).
func (s *CartService) AddToCart(ctx context.Context, productID, qty int) (*AddResult, error) {
	if productID <= 0 || qty <= 0 {
		return nil, fmt.Errorf("%w: productId and qty>0 required", ErrInvalidInput)
	}

	// Products are never deleted, so checking existence up front cannot race
	// with the upsert below.
	prices, err := s.catalogRepo.PricesByIDs(ctx, []int{productID})
	if err != nil {
		return nil, err
	}
	if _, ok := prices[productID]; !ok {
		return nil, fmt.Errorf("%w: unknown product %d", ErrInvalidInput, productID)
	}

	id, newQty, err := s.cartRepo.Upsert(ctx, productID, qty, time.Now())
	if err != nil {
		return nil, err
	}

	// Quantities are positive, so the post-merge qty only equals the
	// requested qty when a fresh line was inserted.
	return &AddResult{CartID: id, Qty: newQty, Merged: newQty != qty}, nil
}

// SetQuantity replaces a line's quantity.
func (s *CartService) SetQuantity(ctx context.Context, id int64, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: qty>0 required", ErrInvalidInput)
	}

	updated, err := s.cartRepo.SetQty(ctx, id, qty)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: no cart line %d", ErrNotFound, id)
	}
	return nil
}

// Remove deletes a line. Removing a missing line is an error, not a silent
// success.
func (s *CartService) Remove(ctx context.Context, id int64) error {
	removed, err := s.cartRepo.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: no cart line %d", ErrNotFound, id)
	}
	return nil
}

// ListCart prices every line at the product's current catalog price,
// rounding each subtotal and then the sum.
func (s *CartService) ListCart(ctx context.Context) (*models.Cart, error) {
	items, err := s.cartRepo.ListLines(ctx)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for i := range items {
		items[i].Subtotal = round2(items[i].Price * float64(items[i].Qty))
		total += items[i].Subtotal
	}

	return &models.Cart{Items: items, Total: round2(total)}, nil
}
