package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/techbooks/storefront/checkout"
	"github.com/techbooks/storefront/internal/config"
	"github.com/techbooks/storefront/orders"
	"github.com/techbooks/storefront/server"
)

func newTestServer(t *testing.T) (*server.Server, *orders.InMemoryRepo, *orders.InMemoryStatusRepo) {
	t.Helper()
	orderRepo := orders.NewInMemoryRepo()
	statusRepo := orders.NewInMemoryStatusRepo()
	srv, err := server.New(config.New(), orderRepo, statusRepo)
	require.NoError(t, err)
	return srv, orderRepo, statusRepo
}

func postJSON(t *testing.T, srv http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestNew(t *testing.T) {
	t.Run("requires every collaborator", func(t *testing.T) {
		_, err := server.New(nil, orders.NewInMemoryRepo(), orders.NewInMemoryStatusRepo())
		require.Error(t, err)

		_, err = server.New(config.New(), nil, orders.NewInMemoryStatusRepo())
		require.Error(t, err)

		_, err = server.New(config.New(), orders.NewInMemoryRepo(), nil)
		require.Error(t, err)
	})
}

func TestHelloHandler(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Hello World"}`, rec.Body.String())
}

func TestCheckoutHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("amount at the threshold succeeds and records an order", func(t *testing.T) {
		srv, orderRepo, _ := newTestServer(t)

		rec := postJSON(t, srv, "/api/checkout", checkout.Request{Amount: 49.99})
		require.Equal(t, http.StatusOK, rec.Code)

		var result checkout.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Equal(t, checkout.StatusSuccess, result.Status)
		require.Equal(t, "Payment Successful! Your order has been placed.", result.Message)
		require.NotEmpty(t, result.OrderID)
		require.NotNil(t, result.Amount)
		require.Equal(t, 49.99, *result.Amount)

		list, err := orderRepo.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, result.OrderID, list[0].ID)
		require.Equal(t, "SUCCESS", list[0].Status)
		require.Equal(t, orders.DefaultProduct, list[0].Product)
	})

	t.Run("amount below the threshold fails and records the attempt", func(t *testing.T) {
		srv, orderRepo, _ := newTestServer(t)

		rec := postJSON(t, srv, "/api/checkout", checkout.Request{Amount: 10})
		require.Equal(t, http.StatusOK, rec.Code)

		var result checkout.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Equal(t, checkout.StatusFailed, result.Status)
		require.Equal(t, "Payment Failed! Minimum amount required is $49.99. You provided $10.00.", result.Message)
		require.Empty(t, result.OrderID)

		list, err := orderRepo.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "FAILED", list[0].Status)
	})

	t.Run("malformed body yields an ERROR result", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var result checkout.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Equal(t, checkout.StatusError, result.Status)
		require.Equal(t, "An error occurred during checkout. Please try again.", result.Message)
	})

	t.Run("a storage failure yields an ERROR result", func(t *testing.T) {
		srv, err := server.New(config.New(), failingOrderRepo{}, orders.NewInMemoryStatusRepo())
		require.NoError(t, err)

		rec := postJSON(t, srv, "/api/checkout", checkout.Request{Amount: 49.99})
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var result checkout.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Equal(t, checkout.StatusError, result.Status)
		require.Equal(t, "An error occurred during checkout. Please try again.", result.Message)
	})
}

func TestOrdersHandler(t *testing.T) {
	srv, orderRepo, _ := newTestServer(t)

	require.NoError(t, orderRepo.Insert(context.Background(), orders.New(orders.DefaultProduct, 49.99, "SUCCESS")))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Orders []orders.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Orders, 1)
	require.Equal(t, orders.DefaultProduct, body.Orders[0].Product)
}

func TestStatusHandlers(t *testing.T) {
	t.Run("a named client is recorded and listed", func(t *testing.T) {
		srv, _, statusRepo := newTestServer(t)

		rec := postJSON(t, srv, "/api/status", map[string]string{"client_name": "frontend"})
		require.Equal(t, http.StatusOK, rec.Code)

		var check orders.StatusCheck
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &check))
		require.NotEmpty(t, check.ID)
		require.Equal(t, "frontend", check.ClientName)

		list, err := statusRepo.List(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, list, 1)

		getRec := httptest.NewRecorder()
		srv.ServeHTTP(getRec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
		require.Equal(t, http.StatusOK, getRec.Code)

		var body struct {
			StatusChecks []orders.StatusCheck `json:"status_checks"`
		}
		require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &body))
		require.Len(t, body.StatusChecks, 1)
	})

	t.Run("a missing client name is rejected", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		rec := postJSON(t, srv, "/api/status", map[string]string{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCorsMiddleware(t *testing.T) {
	t.Run("wildcard origin gets CORS headers without credentials", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight is answered without invoking the handler", func(t *testing.T) {
		srv, orderRepo, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodOptions, "/api/checkout", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))

		list, err := orderRepo.List(context.Background(), 10)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

// failingOrderRepo simulates a broken order log.
type failingOrderRepo struct{}

func (failingOrderRepo) Insert(ctx context.Context, order orders.Order) error {
	return errors.New("storage down")
}

func (failingOrderRepo) List(ctx context.Context, limit int) ([]orders.Order, error) {
	return nil, errors.New("storage down")
}
