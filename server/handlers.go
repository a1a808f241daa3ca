package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/techbooks/storefront/checkout"
	"github.com/techbooks/storefront/orders"
)

const (
	contentTypeJSON = "application/json"

	checkoutErrorMessage = "An error occurred during checkout. Please try again."
	listLimit            = 1000
)

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// HelloHandler responds to the API root, mainly useful as a liveness probe.
func (s *Server) HelloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
	}
}

// PreflightHandler terminates OPTIONS requests that carry no Origin header.
// Requests with an Origin header are answered by the CORS middleware.
func (s *Server) PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// CheckoutHandler evaluates a payment request against the configured
// minimum amount. Both verdicts are recorded in the order log; a storage
// failure downgrades the response to an ERROR result.
func (s *Server) CheckoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkout.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, checkout.Result{
				Status:  checkout.StatusError,
				Message: checkoutErrorMessage,
			})
			return
		}

		threshold := s.config.GetPaymentThreshold()

		var result checkout.Result
		var order orders.Order

		if req.Amount >= threshold {
			order = orders.New(orders.DefaultProduct, req.Amount, string(checkout.StatusSuccess))
			result = checkout.Result{
				Status:  checkout.StatusSuccess,
				Message: "Payment Successful! Your order has been placed.",
				OrderID: order.ID,
				Amount:  &order.Amount,
			}
		} else {
			order = orders.New(orders.DefaultProduct, req.Amount, string(checkout.StatusFailed))
			result = checkout.Result{
				Status:  checkout.StatusFailed,
				Message: fmt.Sprintf("Payment Failed! Minimum amount required is $%.2f. You provided $%.2f.", threshold, req.Amount),
			}
		}

		if err := s.orders.Insert(r.Context(), order); err != nil {
			s.log.Error().Err(err).Str("orderID", order.ID).Msg("failed to record order")
			writeJSON(w, http.StatusInternalServerError, checkout.Result{
				Status:  checkout.StatusError,
				Message: checkoutErrorMessage,
			})
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// OrdersHandler lists recorded orders in insertion order.
func (s *Server) OrdersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.orders.List(r.Context(), listLimit)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list orders")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list orders"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"orders": list})
	}
}

// StatusCreateHandler records a status check from a named client.
func (s *Server) StatusCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ClientName string `json:"client_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ClientName == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "client_name is required"})
			return
		}

		check := orders.NewStatusCheck(body.ClientName)
		if err := s.status.Insert(r.Context(), check); err != nil {
			s.log.Error().Err(err).Msg("failed to record status check")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to record status check"})
			return
		}
		writeJSON(w, http.StatusOK, check)
	}
}

// StatusListHandler lists recorded status checks in insertion order.
func (s *Server) StatusListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.status.List(r.Context(), listLimit)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list status checks")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list status checks"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status_checks": list})
	}
}
