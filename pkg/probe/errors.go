package probe

import "errors"

// Constraint violations. They are reported before any trial is sent and can
// be checked with errors.Is.
var (
	// ErrInvalidEndpoint is returned when the endpoint is not an absolute
	// http or https URL.
	ErrInvalidEndpoint = errors.New("payprobe: invalid endpoint")

	// ErrInvalidTimeout is returned when the per-trial timeout is not positive.
	ErrInvalidTimeout = errors.New("payprobe: timeout must be positive")

	// ErrInvalidBody is returned when a trial body cannot be encoded as JSON.
	ErrInvalidBody = errors.New("payprobe: trial body is not JSON-encodable")
)
