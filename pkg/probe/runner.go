package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/bft-labs/payprobe/pkg/log"
)

// Runner sends trials to one fixed endpoint.
type Runner struct {
	endpoint string
	timeout  time.Duration
	opts     options
}

// New validates endpoint and timeout and returns a Runner.
// endpoint must be an absolute http(s) URL and timeout must be positive.
func New(endpoint string, timeout time.Duration, opts ...Option) (*Runner, error) {
	if err := validateEndpoint(endpoint); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTimeout, timeout)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{
		endpoint: endpoint,
		timeout:  timeout,
		opts:     o,
	}, nil
}

// Run builds a Runner and runs trials once.
func Run(ctx context.Context, endpoint string, trials []Trial, timeout time.Duration, opts ...Option) ([]ProbeResult, error) {
	r, err := New(endpoint, timeout, opts...)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, trials)
}

// Endpoint returns the URL trials are sent to.
func (r *Runner) Endpoint() string { return r.endpoint }

// Run sends each trial in order and returns one result per trial, in the
// same order. Every body is encoded before the first request goes out; an
// unencodable body aborts the run with ErrInvalidBody. After that nothing
// aborts the run: failures are recorded and the next trial is sent.
//
// If ctx is canceled the remaining trials are still reported, as canceled.
func (r *Runner) Run(ctx context.Context, trials []Trial) ([]ProbeResult, error) {
	bodies := make([][]byte, len(trials))
	for i, t := range trials {
		b, err := json.Marshal(t.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: trial %d (%q): %v", ErrInvalidBody, i, t.Label, err)
		}
		bodies[i] = b
	}

	logger := r.opts.logger.With(log.String("run_id", uuid.NewString()))
	logger.Info("probe run started",
		log.String("endpoint", r.endpoint),
		log.Int("trials", len(trials)),
		log.Duration("timeout", r.timeout))

	results := make([]ProbeResult, 0, len(trials))
	for i, t := range trials {
		logger.Debug("sending trial", log.Int("index", i), log.String("label", t.Label))

		res := r.runTrial(ctx, t, bodies[i])
		logResult(logger, res)

		r.opts.reporter.Report(res)
		results = append(results, res)
	}

	logger.Info("probe run finished", log.Int("trials", len(results)))
	return results, nil
}

func (r *Runner) runTrial(ctx context.Context, t Trial, body []byte) ProbeResult {
	res := ProbeResult{Label: t.Label}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	status, raw, err := r.post(ctx, t.Headers, body)
	res.Duration = time.Since(start)
	if err != nil {
		res.Failure = classify(err)
		res.Error = err.Error()
		return res
	}

	res.StatusCode = status
	res.Body = string(raw)
	if res.OK() {
		res.Fields, res.Parsed = Extract(raw)
	}
	return res
}

// post sends one request and reads the (bounded) response body. The body is
// closed on every path.
func (r *Runner) post(ctx context.Context, headers []Header, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	for _, h := range headers {
		req.Header.Add(h.Name, h.Value)
	}
	if req.Header.Get(HeaderContentType) == "" {
		req.Header.Set(HeaderContentType, ContentTypeJSON)
	}

	resp, err := r.opts.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, r.opts.maxBodyBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

func classify(err error) FailureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}
	if errors.Is(err, context.Canceled) {
		return FailureCanceled
	}
	return FailureNetwork
}

func logResult(logger log.Logger, res ProbeResult) {
	if res.Failed() {
		logger.Warn("trial failed",
			log.String("label", res.Label),
			log.String("failure", string(res.Failure)),
			log.String("error", res.Error),
			log.Duration("duration", res.Duration))
		return
	}
	logger.Info("trial answered",
		log.String("label", res.Label),
		log.Int("status", res.StatusCode),
		log.Duration("duration", res.Duration))
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute http(s) URL", ErrInvalidEndpoint, endpoint)
	}
	return nil
}
