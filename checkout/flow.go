package checkout

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// State is the checkout flow's coarse position: idle, awaiting the
// collaborator, or holding a result. The result's Status distinguishes the
// three terminal outcomes.
type State string

const (
	StateIdle       State = "IDLE"
	StateProcessing State = "PROCESSING"
	StateResult     State = "RESULT"
)

// ProcessingErrorMessage is the locally synthesized message for transport,
// timeout, and malformed-response failures. It must never be confused with
// a collaborator-issued FAILED message.
const ProcessingErrorMessage = "An error occurred during payment processing. Please try again."

// Flow owns the in-flight/result state of a single purchase slot. Exactly
// one result is live at a time: a new attempt supersedes an in-flight one,
// and a superseded attempt's response is discarded when it arrives, so the
// visible result always belongs to the most recently initiated request.
type Flow struct {
	client PaymentClient
	log    zerolog.Logger

	mu     sync.Mutex
	state  State
	seq    uint64
	result *Result
}

// FlowOption defines a function type to modify the Flow instance.
type FlowOption func(*Flow)

// WithFlowLogger sets the logger used for attempt tracing.
func WithFlowLogger(log zerolog.Logger) FlowOption {
	return func(f *Flow) {
		f.log = log
	}
}

// NewFlow initializes an idle Flow over the given payment collaborator.
func NewFlow(client PaymentClient, options ...FlowOption) (*Flow, error) {
	if client == nil {
		return nil, errors.New("[NewFlow] payment client is required")
	}

	f := &Flow{
		client: client,
		log:    zerolog.Nop(),
		state:  StateIdle,
	}

	for _, opt := range options {
		opt(f)
	}

	return f, nil
}

// Initiate submits the amount to the payment collaborator and suspends the
// caller until it responds. A well-formed collaborator verdict is returned
// verbatim; transport, timeout, and parse failures are downgraded to an
// ERROR result and never propagate as faults. If a newer attempt starts
// while this one is in flight, this attempt's response is discarded and
// ErrSuperseded is returned.
func (f *Flow) Initiate(ctx context.Context, amount float64) (Result, error) {
	attemptID := uuid.New().String()

	f.mu.Lock()
	f.seq++
	attempt := f.seq
	f.state = StateProcessing
	f.result = nil
	f.mu.Unlock()

	f.log.Debug().Str("attempt_id", attemptID).Float64("amount", amount).Msg("checkout attempt started")

	result, err := f.client.Checkout(ctx, Request{Amount: amount})
	if err != nil {
		f.log.Warn().Str("attempt_id", attemptID).Err(err).Msg("checkout attempt downgraded to ERROR")
		result = Result{Status: StatusError, Message: ProcessingErrorMessage}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if attempt != f.seq {
		f.log.Debug().Str("attempt_id", attemptID).Msg("checkout attempt superseded, response discarded")
		return Result{}, ErrSuperseded
	}

	f.state = StateResult
	published := result
	f.result = &published
	return result, nil
}

// Dismiss clears the live result and returns the flow to idle, ready for a
// new attempt. An attempt still in flight is treated as superseded.
func (f *Flow) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	f.state = StateIdle
	f.result = nil
}

// State returns the flow's current position.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// LastResult returns the live result, or false when the flow is idle or
// still processing.
func (f *Flow) LastResult() (Result, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.result == nil {
		return Result{}, false
	}
	return *f.result, true
}
