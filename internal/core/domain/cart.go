package domain

import "errors"

var ErrCartItemNotFound = errors.New("cart item not found")
var ErrInvalidQuantity = errors.New("quantity must be positive")

// CartItem is one (product, quantity) pair owned by an account. Adds do not
// merge with existing rows for the same product; one row per add.
type CartItem struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
