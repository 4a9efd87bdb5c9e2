package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mini-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/mini-ledger/src/internal/domain"
	"github.com/api-sage/mini-ledger/src/internal/logger"
	"github.com/api-sage/mini-ledger/src/internal/metrics"
)

const (
	opCreate   = "create_account"
	opBalance  = "get_balance"
	opDeposit  = "deposit"
	opWithdraw = "withdraw"
)

type AccountService struct {
	accountRepo domain.AccountRepository
	maxAmount   decimal.Decimal
	metrics     *metrics.Ledger
}

func NewAccountService(accountRepo domain.AccountRepository, maxAmount decimal.Decimal, m *metrics.Ledger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		maxAmount:   maxAmount,
		metrics:     m,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, body []byte) (models.CreateAccountResponse, error) {
	start := time.Now()

	balance, err := models.ParseInitialBalance(body, s.maxAmount)
	if err != nil {
		logger.Error("account service create account validation failed", err, nil)
		s.metrics.ObserveOperation(opCreate, metrics.OutcomeRejected, start)
		return models.CreateAccountResponse{}, err
	}

	account, err := s.accountRepo.Create(ctx, balance)
	if err != nil {
		logger.Error("account service create account repository failed", err, logger.Fields{
			"balance": balance.String(),
		})
		s.metrics.ObserveOperation(opCreate, metrics.OutcomeError, start)
		return models.CreateAccountResponse{}, fmt.Errorf("create account: %w", err)
	}

	response := models.CreateAccountResponse{
		AccountNumber: account.AccountNumber(),
		Balance:       models.FormatBalance(account.Balance()),
	}

	logger.Info("account service create account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       string(response.Balance),
	})
	s.metrics.ObserveOperation(opCreate, metrics.OutcomeSuccess, start)

	return response, nil
}

func (s *AccountService) GetBalance(ctx context.Context, accountNumber string) (models.BalanceResponse, error) {
	start := time.Now()

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("account service get balance failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		s.metrics.ObserveOperation(opBalance, metrics.OutcomeRejected, start)
		return models.BalanceResponse{}, err
	}

	s.metrics.ObserveOperation(opBalance, metrics.OutcomeSuccess, start)
	return models.BalanceResponse{Balance: models.FormatBalance(account.Balance())}, nil
}

func (s *AccountService) Deposit(ctx context.Context, accountNumber string, body []byte) (models.BalanceResponse, error) {
	start := time.Now()

	account, amount, err := s.prepare(ctx, accountNumber, body, "Deposit")
	if err != nil {
		logger.Error("account service deposit rejected", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		s.metrics.ObserveOperation(opDeposit, metrics.OutcomeRejected, start)
		return models.BalanceResponse{}, err
	}

	account.Deposit(amount)
	balance := account.Balance()

	logger.Info("account service deposit success", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        amount.String(),
		"balance":       balance.String(),
	})
	s.metrics.ObserveOperation(opDeposit, metrics.OutcomeSuccess, start)

	return models.BalanceResponse{Balance: models.FormatBalance(balance)}, nil
}

// Withdraw validates the request before touching the account, so a refused
// debit can only mean the balance is too low.
func (s *AccountService) Withdraw(ctx context.Context, accountNumber string, body []byte) (models.BalanceResponse, error) {
	start := time.Now()

	account, amount, err := s.prepare(ctx, accountNumber, body, "Withdrawal")
	if err != nil {
		logger.Error("account service withdraw rejected", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		s.metrics.ObserveOperation(opWithdraw, metrics.OutcomeRejected, start)
		return models.BalanceResponse{}, err
	}

	if !account.Withdraw(amount) {
		logger.Info("account service withdraw insufficient balance", logger.Fields{
			"accountNumber": accountNumber,
			"amount":        amount.String(),
		})
		s.metrics.ObserveOperation(opWithdraw, metrics.OutcomeRejected, start)
		return models.BalanceResponse{}, domain.ErrInsufficientBalance
	}
	balance := account.Balance()

	logger.Info("account service withdraw success", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        amount.String(),
		"balance":       balance.String(),
	})
	s.metrics.ObserveOperation(opWithdraw, metrics.OutcomeSuccess, start)

	return models.BalanceResponse{Balance: models.FormatBalance(balance)}, nil
}

func (s *AccountService) prepare(ctx context.Context, accountNumber string, body []byte, label string) (*domain.Account, decimal.Decimal, error) {
	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, decimal.Zero, err
	}

	amount, err := models.ParseAmount(body, s.maxAmount)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmountFormat) || errors.Is(err, domain.ErrTooManyDecimalPlaces) {
			err = fmt.Errorf("%s failed - %w", label, err)
		}
		return nil, decimal.Zero, err
	}

	return account, amount, nil
}
