package utils

import "errors"

// Common application errors used across services.
var (
	ErrNegativePrice    = errors.New("NEGATIVE_PRICE")
	ErrNegativeQuantity = errors.New("NEGATIVE_QUANTITY")
	ErrInvalidPromoType = errors.New("INVALID_PROMO_TYPE")
)
