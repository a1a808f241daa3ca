package checkout

// Status is the outcome classification of a checkout attempt. SUCCESS and
// FAILED are verdicts issued by the payment collaborator and relayed
// verbatim; ERROR is synthesized locally for transport, timeout, and
// malformed-response failures and never comes from the collaborator.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
	StatusError   Status = "ERROR"
)

// Request is the payload sent to the payment collaborator.
type Request struct {
	Amount float64 `json:"amount"`
}

// Result is a collaborator response consumed verbatim, or a locally
// synthesized ERROR. OrderID is present only on SUCCESS, per the
// collaborator's contract.
type Result struct {
	Status  Status   `json:"status"`
	Message string   `json:"message"`
	OrderID string   `json:"order_id,omitempty"`
	Amount  *float64 `json:"amount,omitempty"`
}
