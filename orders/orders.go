// Package orders holds the payment simulator's transaction log: an Order is
// written for every checkout verdict, successful or not, and StatusChecks
// record backend liveness probes.
package orders

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProduct is the catalog's single product.
const DefaultProduct = "Advanced Web Tech E-book"

// Order is one recorded checkout verdict.
type Order struct {
	ID      string    `json:"id"`
	Product string    `json:"product"`
	Amount  float64   `json:"amount"`
	Status  string    `json:"status"`
	Date    time.Time `json:"date"`
}

// New creates an Order with a fresh ID and the current UTC time.
func New(product string, amount float64, status string) Order {
	return Order{
		ID:      uuid.New().String(),
		Product: product,
		Amount:  amount,
		Status:  status,
		Date:    time.Now().UTC(),
	}
}

// StatusCheck is one recorded liveness probe.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewStatusCheck creates a StatusCheck with a fresh ID and the current UTC
// time.
func NewStatusCheck(clientName string) StatusCheck {
	return StatusCheck{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
