package probe

import "time"

// FailureKind classifies a trial that produced no HTTP response.
type FailureKind string

const (
	// FailureNone means a response was received (any status).
	FailureNone FailureKind = ""

	// FailureTimeout means the per-trial timeout elapsed first.
	FailureTimeout FailureKind = "timeout"

	// FailureNetwork covers DNS, connect, TLS and read errors.
	FailureNetwork FailureKind = "network"

	// FailureCanceled means the caller's context was canceled.
	FailureCanceled FailureKind = "canceled"
)

// Lookup is the outcome of one optional key lookup in a response body.
type Lookup struct {
	Value string
	Found bool
}

// String returns the value, or "not found".
func (l Lookup) String() string {
	if !l.Found {
		return "not found"
	}
	return l.Value
}

// Extracted holds the fields looked up in a successful JSON response.
type Extracted struct {
	TransactionID Lookup
	PixCode       Lookup
	PixQRCode     Lookup
}

// ProbeResult is the recorded outcome of running one Trial.
type ProbeResult struct {
	Label string

	// StatusCode is 0 when Failure is set.
	StatusCode int

	Failure FailureKind
	Error   string

	// Body is the raw response text, possibly truncated to the runner's
	// body limit.
	Body string

	// Parsed reports whether a 2xx body was a JSON object. Fields is only
	// meaningful when Parsed is true.
	Parsed bool
	Fields Extracted

	Duration time.Duration
}

// Failed reports whether the trial got no HTTP response.
func (r ProbeResult) Failed() bool {
	return r.Failure != FailureNone
}

// OK reports whether the endpoint answered with a 2xx status.
func (r ProbeResult) OK() bool {
	return !r.Failed() && r.StatusCode/100 == 2
}
