package probe

import (
	"net/http"

	"github.com/bft-labs/payprobe/pkg/log"
)

// DefaultMaxBodyBytes caps how much of a response body is kept.
const DefaultMaxBodyBytes int64 = 1 << 20

// Option configures optional behavior of a Runner.
type Option func(*options)

type options struct {
	httpClient   HTTPClient
	reporter     Reporter
	logger       log.Logger
	maxBodyBytes int64
}

func defaultOptions() options {
	return options{
		// Per-trial deadlines come from the runner's context, so the client
		// itself carries no timeout.
		httpClient:   &http.Client{},
		reporter:     Discard,
		logger:       log.NewNoopLogger(),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
}

// WithHTTPClient sets the client used to send trials.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithReporter sets where results are reported as they are produced.
// Without it results are only returned from Run.
func WithReporter(reporter Reporter) Option {
	return func(o *options) {
		if reporter != nil {
			o.reporter = reporter
		}
	}
}

// WithLogger sets a logger for run diagnostics. The default discards them.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxBodyBytes limits how many bytes of each response body are read.
// Non-positive values keep the default.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}
