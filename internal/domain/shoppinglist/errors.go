package shoppinglist

import "foodgram/internal/pkg/apperr"

var (
	ErrEmptyCart     = apperr.NotFound("EMPTY_CART", "shopping cart is empty")
	ErrUnknownFormat = apperr.Validation("UNKNOWN_FORMAT", "format must be txt or pdf")
)
