package models

import "time"

// CheckoutItem is the client's view of a cart line at checkout time. Only
// identifiers and quantity are bound; any price the client sends is dropped
// here, so totals can only come from the catalog.
type CheckoutItem struct {
	CartID    int64 `json:"cartId"`
	ProductID int   `json:"productId"`
	Qty       int   `json:"qty"`
}

// Receipt is returned by checkout and never persisted.
type Receipt struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Total     float64        `json:"total"`
	Items     []CheckoutItem `json:"items"`
	Timestamp time.Time      `json:"timestamp"`
}
