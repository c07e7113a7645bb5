package query

import "fmt"

// InvalidResponseError reports a daemon reply that violates the query
// envelope contract. Raw always carries the offending text for
// diagnostics.
type InvalidResponseError struct {
	Raw   string
	Cause error
}

func (e *InvalidResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("query: cannot parse response as JSON: %v (raw=%q)", e.Cause, e.Raw)
	}
	return fmt.Sprintf("query: unexpected response envelope: %q", e.Raw)
}

func (e *InvalidResponseError) Unwrap() error {
	return e.Cause
}
