package domain

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinAccountNumber = 1000
	MaxAccountNumber = 9999
)

// Account is a single ledger account. All balance access goes through the
// account's own lock, so one Account may be shared between goroutines.
type Account struct {
	mu            sync.Mutex
	accountNumber string
	balance       decimal.Decimal
	createdAt     time.Time
}

// NewAccount builds an account. An empty accountNumber is replaced by a
// random number in [MinAccountNumber, MaxAccountNumber]. The opening balance
// is taken as given.
func NewAccount(accountNumber string, balance decimal.Decimal) *Account {
	if accountNumber == "" {
		accountNumber = RandomAccountNumber()
	}

	return &Account{
		accountNumber: accountNumber,
		balance:       balance,
		createdAt:     time.Now().UTC(),
	}
}

func RandomAccountNumber() string {
	return strconv.Itoa(MinAccountNumber + rand.Intn(MaxAccountNumber-MinAccountNumber+1))
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit credits a positive amount. Zero and negative amounts are ignored.
func (a *Account) Deposit(amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}

	a.mu.Lock()
	a.balance = a.balance.Add(amount)
	a.mu.Unlock()
}

// Withdraw debits amount when 0 < amount <= balance and reports whether it did.
func (a *Account) Withdraw(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.GreaterThan(a.balance) {
		return false
	}

	a.balance = a.balance.Sub(amount)
	return true
}
