package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"vibe-shop/models"

	"github.com/google/uuid"
)

// CheckoutService re-prices the client's cart view against the catalog,
// builds a receipt and clears the shared cart. Receipts are never stored.
type CheckoutService struct {
	cartRepo    CartRepository
	catalogRepo CatalogRepository
	mailer      ReceiptMailer // nil when SMTP is not configured
}

func NewCheckoutService(cartRepo CartRepository, catalogRepo CatalogRepository, mailer ReceiptMailer) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		mailer:      mailer,
	}
}

// Checkout validates before mutating: any invalid input aborts with the cart
// untouched. Once the receipt is built the cart is cleared unconditionally;
// a failed clear is logged but the buyer still gets their receipt.
func (s *CheckoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Receipt, error) {
	if len(req.CartItems) == 0 {
		return nil, fmt.Errorf("%w: cart empty", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: cartItems, name, email required", ErrInvalidInput)
	}

	seen := map[int]bool{}
	ids := []int{}
	for _, it := range req.CartItems {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}

	prices, err := s.catalogRepo.PricesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Totals come from the catalog only; whatever price the client thinks it
	// saw is irrelevant.
	total := 0.0
	for _, it := range req.CartItems {
		price, ok := prices[it.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: invalid productId %d", ErrInvalidInput, it.ProductID)
		}
		total += price * float64(it.Qty)
	}

	receipt := &models.Receipt{
		ID:        "R-" + uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Total:     round2(total),
		Items:     req.CartItems,
		Timestamp: time.Now().UTC(),
	}

	if err := s.cartRepo.Clear(ctx); err != nil {
		log.Printf("Error clearing cart after checkout %s: %v", receipt.ID, err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendReceipt(receipt); err != nil {
			log.Printf("Failed to send receipt email for %s: %v", receipt.ID, err)
		}
	}

	return receipt, nil
}
