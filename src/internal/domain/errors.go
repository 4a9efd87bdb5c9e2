package domain

import "errors"

// Amount validation failures, in the order they are checked.
var (
	ErrMalformedRequest     = errors.New("Invalid or missing JSON payload")
	ErrMissingAmount        = errors.New("Missing 'amount' in request")
	ErrInvalidAmountFormat  = errors.New("Amount must be numeric and have at most 2 decimal places")
	ErrNegativeAmount       = errors.New("Amount cannot be negative")
	ErrZeroAmount           = errors.New("Amount must be greater than zero")
	ErrTooManyDecimalPlaces = errors.New("Amount must have at most 2 decimal places")
	ErrAmountTooLarge       = errors.New("Amount exceeds maximum allowed value")
)

var ErrInvalidInitialBalance = errors.New("Invalid initial balance")

var ErrInsufficientBalance = errors.New("Insufficient balance")

var ErrAccountNumbersExhausted = errors.New("no free account numbers left")
