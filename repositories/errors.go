package repositories

import "errors"

// Error kinds surfaced to controllers. Controllers translate these with
// errors.Is; anything else is an internal error reported generically.
var (
	ErrNotFound        = errors.New("record not found")
	ErrValidation      = errors.New("validation failed")
	ErrAlreadyConsumed = errors.New("barcode already consumed")
	ErrAlreadyReturned = errors.New("barcode already returned")
	ErrNoneMatched     = errors.New("no items matched")
	ErrPartialMatch    = errors.New("fewer items matched than requested")
	ErrStockConsumed   = errors.New("stock unit already consumed")
)
