package checkout

import "errors"

var (
	// ErrSuperseded is returned from Initiate when a newer attempt was
	// started (or the flow was dismissed) while this attempt's request was
	// in flight. The superseded response is discarded, never published.
	ErrSuperseded = errors.New("checkout attempt superseded")

	// ErrUnexpectedResponse marks a collaborator response that does not
	// match the documented contract.
	ErrUnexpectedResponse = errors.New("unexpected payment response")
)
