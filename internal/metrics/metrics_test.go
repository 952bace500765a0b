package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"buddypay/internal/core"
)

func TestMetrics_ObserveOperation(t *testing.T) {
	t.Parallel()

	m := New()

	m.ObserveOperation(core.OperationTransfer, decimal.RequireFromString("12.50"), nil)
	m.ObserveOperation(core.OperationTransfer, decimal.RequireFromString("3.00"), nil)
	m.ObserveOperation(core.OperationTransfer, decimal.RequireFromString("99.00"), core.ErrInsufficientFunds)
	m.ObserveOperation(core.OperationAddFriend, decimal.Zero, core.ErrSelfFriend)
	m.ObserveOperation(core.OperationBankWithdrawal, decimal.RequireFromString("1"), errors.New("disk full"))

	require.InDelta(t, 2, testutil.ToFloat64(m.operations.WithLabelValues("transfer", "ok")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.operations.WithLabelValues("transfer", "insufficient_funds")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.operations.WithLabelValues("add_friend", "unauthorized")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.operations.WithLabelValues("bank_withdrawal", "error")), 0)

	require.InDelta(t, 15.5, testutil.ToFloat64(m.movedAmount.WithLabelValues("transfer")), 1e-9)
	require.InDelta(t, 0, testutil.ToFloat64(m.movedAmount.WithLabelValues("bank_withdrawal")), 0)
}

func TestMetrics_ObserveCommission(t *testing.T) {
	t.Parallel()

	m := New()

	m.ObserveCommission(decimal.RequireFromString("1.00"))
	m.ObserveCommission(decimal.RequireFromString("0.00"))
	m.ObserveCommission(decimal.RequireFromString("0.62"))

	require.InDelta(t, 1.62, testutil.ToFloat64(m.commissions), 1e-9)
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	t.Parallel()

	m := New()

	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.Handle("/metrics", m.Handler())

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.True(t, strings.Contains(body, `buddypay_http_request_duration_seconds_count{method="GET",route="/users/{id}",status="418"} 1`), body)
}
