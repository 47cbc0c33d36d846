package store

import "errors"

// Sentinel errors returned by Ledger operations. A rejected sale performs no
// mutation at all; callers can match the cause with errors.Is.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrEmptyCustomerName = errors.New("customer name is empty")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
)
