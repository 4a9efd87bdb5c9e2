package memory

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/mini-ledger/src/internal/commons"
	"github.com/api-sage/mini-ledger/src/internal/domain"
)

func TestAccountRepository_CreateAndGet(t *testing.T) {
	require := require.New(t)
	repo := NewAccountRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, decimal.RequireFromString("100.00"))
	require.NoError(err)

	n, err := strconv.Atoi(created.AccountNumber())
	require.NoError(err)
	require.GreaterOrEqual(n, domain.MinAccountNumber)
	require.LessOrEqual(n, domain.MaxAccountNumber)

	got, err := repo.GetByAccountNumber(ctx, created.AccountNumber())
	require.NoError(err)
	require.Same(created, got)
	require.Equal("100.00", got.Balance().StringFixed(2))
	require.Equal(1, repo.Count())
}

func TestAccountRepository_GetUnknown(t *testing.T) {
	_, err := NewAccountRepository().GetByAccountNumber(context.Background(), "9999")
	require.True(t, errors.Is(err, commons.ErrRecordNotFound))
}

func TestAccountRepository_RetriesOnCollision(t *testing.T) {
	require := require.New(t)
	repo := NewAccountRepository()

	draws := []int{0, 0, 0, 5}
	repo.draw = func(int) int {
		next := draws[0]
		draws = draws[1:]
		return next
	}

	first, err := repo.Create(context.Background(), decimal.Zero)
	require.NoError(err)
	require.Equal("1000", first.AccountNumber())

	second, err := repo.Create(context.Background(), decimal.Zero)
	require.NoError(err)
	require.Equal("1005", second.AccountNumber())

	got, err := repo.GetByAccountNumber(context.Background(), "1000")
	require.NoError(err)
	require.Same(first, got)
}

func TestAccountRepository_ScansWhenDrawsKeepColliding(t *testing.T) {
	require := require.New(t)
	repo := NewAccountRepository()
	repo.draw = func(int) int { return 0 }

	for i := 0; i < 3; i++ {
		_, err := repo.Create(context.Background(), decimal.Zero)
		require.NoError(err)
	}

	for _, want := range []string{"1000", "1001", "1002"} {
		_, err := repo.GetByAccountNumber(context.Background(), want)
		require.NoError(err)
	}
}

func TestAccountRepository_Exhausted(t *testing.T) {
	require := require.New(t)
	repo := NewAccountRepository()

	for i := 0; i < accountNumberSpace; i++ {
		_, err := repo.Create(context.Background(), decimal.Zero)
		require.NoError(err)
	}
	require.Equal(accountNumberSpace, repo.Count())

	_, err := repo.Create(context.Background(), decimal.Zero)
	require.ErrorIs(err, domain.ErrAccountNumbersExhausted)
}

func TestAccountRepository_ConcurrentCreateIsUnique(t *testing.T) {
	require := require.New(t)
	repo := NewAccountRepository()

	const workers = 500
	numbers := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc, err := repo.Create(context.Background(), decimal.Zero)
			if err == nil {
				numbers <- acc.AccountNumber()
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]struct{}, workers)
	for n := range numbers {
		_, dup := seen[n]
		require.False(dup, "duplicate account number %s", n)
		seen[n] = struct{}{}
	}
	require.Len(seen, workers)
	require.Equal(workers, repo.Count())
}
