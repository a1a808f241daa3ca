package checkout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/techbooks/storefront/checkout"
)

func TestNewHTTPClient(t *testing.T) {
	t.Run("requires a base URL", func(t *testing.T) {
		_, err := checkout.NewHTTPClient("")
		require.Error(t, err)
	})
}

func TestHTTPClientCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the amount and returns the verdict verbatim", func(t *testing.T) {
		var gotPath, gotContentType string
		var gotBody checkout.Request

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(checkout.Result{
				Status:  checkout.StatusSuccess,
				Message: "Payment Successful! Your order has been placed.",
				OrderID: "order-123",
			})
		}))
		defer srv.Close()

		client, err := checkout.NewHTTPClient(srv.URL)
		require.NoError(t, err)

		result, err := client.Checkout(ctx, checkout.Request{Amount: 49.99})
		require.NoError(t, err)
		require.Equal(t, "/api/checkout", gotPath)
		require.Equal(t, "application/json", gotContentType)
		require.Equal(t, 49.99, gotBody.Amount)
		require.Equal(t, checkout.StatusSuccess, result.Status)
		require.Equal(t, "Payment Successful! Your order has been placed.", result.Message)
		require.Equal(t, "order-123", result.OrderID)
	})

	t.Run("a FAILED verdict is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(checkout.Result{
				Status:  checkout.StatusFailed,
				Message: "Payment Failed! Minimum amount required is $49.99. You provided $10.00.",
			})
		}))
		defer srv.Close()

		client, err := checkout.NewHTTPClient(srv.URL)
		require.NoError(t, err)

		result, err := client.Checkout(ctx, checkout.Request{Amount: 10})
		require.NoError(t, err)
		require.Equal(t, checkout.StatusFailed, result.Status)
	})

	t.Run("a non-2xx response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client, err := checkout.NewHTTPClient(srv.URL)
		require.NoError(t, err)

		_, err = client.Checkout(ctx, checkout.Request{Amount: 49.99})
		require.ErrorIs(t, err, checkout.ErrUnexpectedResponse)
	})

	t.Run("an unknown status string is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"MAYBE","message":"?"}`))
		}))
		defer srv.Close()

		client, err := checkout.NewHTTPClient(srv.URL)
		require.NoError(t, err)

		_, err = client.Checkout(ctx, checkout.Request{Amount: 49.99})
		require.ErrorIs(t, err, checkout.ErrUnexpectedResponse)
	})

	t.Run("a malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		client, err := checkout.NewHTTPClient(srv.URL)
		require.NoError(t, err)

		_, err = client.Checkout(ctx, checkout.Request{Amount: 49.99})
		require.Error(t, err)
	})

	t.Run("a slow collaborator trips the timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		client, err := checkout.NewHTTPClient(srv.URL, checkout.WithTimeout(50*time.Millisecond))
		require.NoError(t, err)

		_, err = client.Checkout(ctx, checkout.Request{Amount: 49.99})
		require.Error(t, err)
	})
}
