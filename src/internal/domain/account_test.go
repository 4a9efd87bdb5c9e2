package domain_test

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/mini-ledger/src/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewAccount_GeneratesFourDigitNumber(t *testing.T) {
	require := require.New(t)

	for i := 0; i < 200; i++ {
		acc := domain.NewAccount("", decimal.Zero)
		n, err := strconv.Atoi(acc.AccountNumber())
		require.NoError(err)
		require.GreaterOrEqual(n, domain.MinAccountNumber)
		require.LessOrEqual(n, domain.MaxAccountNumber)
	}
}

func TestNewAccount_KeepsGivenNumberAndBalance(t *testing.T) {
	require := require.New(t)

	acc := domain.NewAccount("0042", dec("12.50"))
	require.Equal("0042", acc.AccountNumber())
	require.True(acc.Balance().Equal(dec("12.5")))
	require.False(acc.CreatedAt().IsZero())
}

func TestAccount_Deposit(t *testing.T) {
	require := require.New(t)

	acc := domain.NewAccount("1000", dec("100.00"))
	acc.Deposit(dec("50.00"))
	require.Equal("150.00", acc.Balance().StringFixed(2))

	acc.Deposit(decimal.Zero)
	acc.Deposit(dec("-10"))
	require.Equal("150.00", acc.Balance().StringFixed(2))
}

func TestAccount_Withdraw(t *testing.T) {
	require := require.New(t)

	acc := domain.NewAccount("1000", dec("150.00"))

	require.False(acc.Withdraw(dec("200.00")))
	require.False(acc.Withdraw(decimal.Zero))
	require.False(acc.Withdraw(dec("-1")))
	require.Equal("150.00", acc.Balance().StringFixed(2))

	require.True(acc.Withdraw(dec("150.00")))
	require.Equal("0.00", acc.Balance().StringFixed(2))
}

func TestAccount_BalanceHasNoSideEffects(t *testing.T) {
	acc := domain.NewAccount("1000", dec("7.25"))
	for i := 0; i < 3; i++ {
		require.Equal(t, "7.25", acc.Balance().StringFixed(2))
	}
}

func TestAccount_ExactDecimalArithmetic(t *testing.T) {
	acc := domain.NewAccount("1000", decimal.Zero)
	for i := 0; i < 10; i++ {
		acc.Deposit(dec("0.10"))
	}
	require.True(t, acc.Balance().Equal(dec("1")))
}

func TestAccount_ConcurrentMutations(t *testing.T) {
	require := require.New(t)

	acc := domain.NewAccount("1000", dec("1000.00"))

	var failed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			acc.Deposit(dec("1.01"))
		}()
		go func() {
			defer wg.Done()
			if !acc.Withdraw(dec("0.01")) {
				failed.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Zero(failed.Load())

	require.Equal("1100.00", acc.Balance().StringFixed(2))
}
