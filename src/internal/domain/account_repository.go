package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	Create(ctx context.Context, balance decimal.Decimal) (*Account, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (*Account, error)
	Count() int
}
