package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mini-ledger/src/internal/domain"
)

const maxFractionDigits = 2

var errNotDecimal = errors.New("value is not a decimal number")

// ParseAmount applies the amount contract to a raw request body and returns
// the validated amount. Checks run in a fixed order and the first failing
// one decides the error.
func ParseAmount(body []byte, maxAmount decimal.Decimal) (decimal.Decimal, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return decimal.Zero, domain.ErrMalformedRequest
	}

	raw, ok := fields["amount"]
	if !ok {
		return decimal.Zero, domain.ErrMissingAmount
	}

	amount, err := parseDecimal(raw)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmountFormat
	}

	if err := ValidateAmount(amount, maxAmount); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

func ValidateAmount(amount, maxAmount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrNegativeAmount
	}
	if amount.IsZero() {
		return domain.ErrZeroAmount
	}
	if amount.Exponent() < -maxFractionDigits {
		return domain.ErrTooManyDecimalPlaces
	}
	if exceeds(amount, maxAmount) {
		return domain.ErrAmountTooLarge
	}
	return nil
}

// exceeds compares without rescaling values like 1e999999999 into memory.
func exceeds(amount, maxAmount decimal.Decimal) bool {
	if amount.Exponent() > 0 && int(amount.Exponent()) >= integerDigits(maxAmount) {
		return true
	}
	return amount.GreaterThan(maxAmount)
}

func integerDigits(d decimal.Decimal) int {
	return len(d.Abs().Truncate(0).String())
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("empty body")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("body is null")
	}

	return fields, nil
}

// parseDecimal accepts a JSON string or number literal. Number literals are
// read from their source text so no binary floating point is involved.
func parseDecimal(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.Zero, errNotDecimal
	}

	var text string
	switch c := raw[0]; {
	case c == '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, err
		}
		text = strings.TrimSpace(text)
	case c == '-' || (c >= '0' && c <= '9'):
		text = string(raw)
	default:
		return decimal.Zero, errNotDecimal
	}

	if text == "" {
		return decimal.Zero, errNotDecimal
	}

	return decimal.NewFromString(text)
}
