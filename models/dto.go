package models

type AddToCartRequest struct {
	ProductID int `json:"productId"`
	Qty       int `json:"qty"`
}

type UpdateQtyRequest struct {
	Qty int `json:"qty"`
}

type CheckoutRequest struct {
	CartItems []CheckoutItem `json:"cartItems"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
}

type AddToCartResponse struct {
	Message string `json:"message"`
	CartID  int64  `json:"cartId"`
	Qty     int    `json:"qty"`
}

type UpdateQtyResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Qty     int    `json:"qty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CheckoutResponse struct {
	Receipt Receipt `json:"receipt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
