// Package trialfile loads probe trials from a TOML file and re-loads them
// when the file changes.
//
// A trial file looks like:
//
//	[[trial]]
//	label = "flat body, bearer key"
//	auth  = "bearer"
//	body  = '''
//	{"name": "A", "cpf": "11144477735", "paymentMethod": "PIX", "amount": 1000}
//	'''
//
//	[trial.headers]
//	X-Api-Version = "2"
//
// Bodies are JSON text and are sent verbatim, so the key order written in the
// file is the key order on the wire.
package trialfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/payprobe/internal/catalog"
	"github.com/bft-labs/payprobe/pkg/probe"
)

// ErrInvalidTrial is wrapped by every validation error.
var ErrInvalidTrial = errors.New("payprobe: invalid trial")

type document struct {
	Trials []entry `toml:"trial"`
}

type entry struct {
	Label   string            `toml:"label"`
	Auth    string            `toml:"auth"`
	Body    string            `toml:"body"`
	Headers map[string]string `toml:"headers"`
}

// Load reads and parses the trial file at path.
func Load(path string, credential string) ([]probe.Trial, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trials, err := Parse(b, credential)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return trials, nil
}

// Parse decodes a trial document. credential fills the Authorization header
// according to each trial's auth scheme. Extra headers replace a default of
// the same name or are appended after the defaults, sorted by name.
func Parse(data []byte, credential string) ([]probe.Trial, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse trials: %w", err)
	}
	if len(doc.Trials) == 0 {
		return nil, fmt.Errorf("%w: no [[trial]] tables", ErrInvalidTrial)
	}

	trials := make([]probe.Trial, 0, len(doc.Trials))
	for i, e := range doc.Trials {
		t, err := e.trial(credential)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i+1, err)
		}
		trials = append(trials, t)
	}
	return trials, nil
}

func (e entry) trial(credential string) (probe.Trial, error) {
	if e.Label == "" {
		return probe.Trial{}, fmt.Errorf("%w: label is required", ErrInvalidTrial)
	}

	scheme, err := catalog.ParseAuthScheme(e.Auth)
	if err != nil {
		return probe.Trial{}, fmt.Errorf("%w: %q: %v", ErrInvalidTrial, e.Label, err)
	}

	body := bytes.TrimSpace([]byte(e.Body))
	if !json.Valid(body) {
		return probe.Trial{}, fmt.Errorf("%w: %q: body is not valid JSON", ErrInvalidTrial, e.Label)
	}

	headers := catalog.Headers(scheme, credential)
	names := make([]string, 0, len(e.Headers))
	for n := range e.Headers {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		headers = setHeader(headers, n, e.Headers[n])
	}

	return probe.Trial{
		Label:   e.Label,
		Headers: headers,
		Body:    json.RawMessage(body),
	}, nil
}

func setHeader(headers []probe.Header, name, value string) []probe.Header {
	for i, h := range headers {
		if strings.EqualFold(h.Name, name) {
			headers[i].Value = value
			return headers
		}
	}
	return append(headers, probe.Header{Name: name, Value: value})
}
