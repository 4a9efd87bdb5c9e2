package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestLedger_CountsOperationsAndRequests(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	accounts := 3
	m := New(reg, func() int { return accounts })

	m.ObserveOperation("deposit", OutcomeSuccess, time.Now())
	m.ObserveOperation("deposit", OutcomeSuccess, time.Now())
	m.ObserveOperation("withdraw", OutcomeRejected, time.Now())
	m.ObserveRequest("GET", "/accounts/{accountNumber}/balance", "200")

	require.Equal(2.0, testutil.ToFloat64(m.operations.WithLabelValues("deposit", OutcomeSuccess)))
	require.Equal(1.0, testutil.ToFloat64(m.operations.WithLabelValues("withdraw", OutcomeRejected)))
	require.Equal(1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/accounts/{accountNumber}/balance", "200")))
	require.Equal(3.0, testutil.ToFloat64(m.accounts))

	accounts = 4
	require.Equal(4.0, testutil.ToFloat64(m.accounts))
}

func TestLedger_NilIsNoop(t *testing.T) {
	var m *Ledger
	m.ObserveOperation("deposit", OutcomeSuccess, time.Now())
	m.ObserveRequest("GET", "/", "200")
}
