package memory

import (
	"context"
	"math/rand"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mini-ledger/src/internal/commons"
	"github.com/api-sage/mini-ledger/src/internal/domain"
	"github.com/api-sage/mini-ledger/src/internal/logger"
)

// randomDraws bounds how many random account numbers are tried before
// falling back to a scan for a free one.
const randomDraws = 32

const accountNumberSpace = domain.MaxAccountNumber - domain.MinAccountNumber + 1

// AccountRepository keeps every account of the process in memory.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	draw     func(n int) int
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
		draw:     rand.Intn,
	}
}

func (r *AccountRepository) Create(_ context.Context, balance decimal.Decimal) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accountNumber, ok := r.freeAccountNumber()
	if !ok {
		logger.Error("account repository create failed", domain.ErrAccountNumbersExhausted, logger.Fields{
			"accounts": len(r.accounts),
		})
		return nil, domain.ErrAccountNumbersExhausted
	}

	account := domain.NewAccount(accountNumber, balance)
	r.accounts[account.AccountNumber()] = account

	logger.Info("account repository create success", logger.Fields{
		"accountNumber": account.AccountNumber(),
	})

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.RLock()
	account, ok := r.accounts[accountNumber]
	r.mu.RUnlock()

	if !ok {
		return nil, commons.ErrRecordNotFound
	}

	return account, nil
}

func (r *AccountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// freeAccountNumber must be called with r.mu held for writing.
func (r *AccountRepository) freeAccountNumber() (string, bool) {
	if len(r.accounts) >= accountNumberSpace {
		return "", false
	}

	for i := 0; i < randomDraws; i++ {
		candidate := strconv.Itoa(domain.MinAccountNumber + r.draw(accountNumberSpace))
		if _, taken := r.accounts[candidate]; !taken {
			return candidate, true
		}
	}

	start := r.draw(accountNumberSpace)
	for i := 0; i < accountNumberSpace; i++ {
		candidate := strconv.Itoa(domain.MinAccountNumber + (start+i)%accountNumberSpace)
		if _, taken := r.accounts[candidate]; !taken {
			return candidate, true
		}
	}

	return "", false
}
