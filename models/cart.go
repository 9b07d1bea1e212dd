package models

import "time"

// CartLine is a row of the cart table. At most one line exists per product;
// adding an already-carted product merges quantities instead.
type CartLine struct {
	ID        int64     `json:"cartId"`
	ProductID int       `json:"productId"`
	Qty       int       `json:"qty"`
	AddedAt   time.Time `json:"addedAt"`
}

// CartItem is a cart line joined with the current catalog record. Price is
// always the product's current price, never a value cached at add time.
type CartItem struct {
	CartID    int64   `json:"cartId"`
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Subtotal  float64 `json:"subtotal"`
}

type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
