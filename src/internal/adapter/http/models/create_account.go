package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mini-ledger/src/internal/domain"
)

// ParseInitialBalance reads the optional opening balance of a new account.
// A missing or null balance opens the account at zero.
func ParseInitialBalance(body []byte, maxAmount decimal.Decimal) (decimal.Decimal, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return decimal.Zero, domain.ErrMalformedRequest
	}

	raw, ok := fields["balance"]
	if !ok || string(raw) == "null" {
		return decimal.Zero, nil
	}

	balance, err := parseDecimal(raw)
	if err != nil ||
		balance.IsNegative() ||
		balance.Exponent() < -maxFractionDigits ||
		exceeds(balance, maxAmount) {
		return decimal.Zero, domain.ErrInvalidInitialBalance
	}

	return balance, nil
}

type CreateAccountResponse struct {
	AccountNumber string      `json:"account_number"`
	Balance       json.Number `json:"balance"`
}

type BalanceResponse struct {
	Balance json.Number `json:"balance"`
}

// FormatBalance renders a balance as a JSON number with two decimals.
func FormatBalance(balance decimal.Decimal) json.Number {
	return json.Number(balance.StringFixed(maxFractionDigits))
}
