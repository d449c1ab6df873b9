// Package report renders probe results as plain text for the operator.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bft-labs/payprobe/pkg/probe"
)

// TextReporter writes one line per result.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report implements probe.Reporter. Write errors are ignored; the report is
// best-effort output and must not interrupt a run.
func (r *TextReporter) Report(res probe.ProbeResult) {
	fmt.Fprintln(r.w, Line(res))
}

// Line formats res on a single line:
//
//	[flat body, raw key] status=200 time=312ms body={"id":"a"} id=a pixCode=not found pixQrCode=not found
//	[minimal body, raw key] failed=timeout time=10s error=...
func Line(res probe.ProbeResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] ", res.Label)

	if res.Failed() {
		fmt.Fprintf(&b, "failed=%s time=%s error=%s", res.Failure, round(res.Duration), oneLine(res.Error))
		return b.String()
	}

	fmt.Fprintf(&b, "status=%d time=%s body=%s", res.StatusCode, round(res.Duration), oneLine(res.Body))
	if res.OK() && res.Parsed {
		fmt.Fprintf(&b, " id=%s pixCode=%s pixQrCode=%s",
			res.Fields.TransactionID, res.Fields.PixCode, res.Fields.PixQRCode)
	}
	return b.String()
}

// Summary counts results by outcome.
type Summary struct {
	Total    int
	Accepted int // 2xx
	Rejected int // any other status
	Failed   int // no response
}

// Summarize tallies results.
func Summarize(results []probe.ProbeResult) Summary {
	s := Summary{Total: len(results)}
	for _, res := range results {
		switch {
		case res.Failed():
			s.Failed++
		case res.OK():
			s.Accepted++
		default:
			s.Rejected++
		}
	}
	return s
}

// WriteSummary writes the closing line of a run.
func WriteSummary(w io.Writer, results []probe.ProbeResult) error {
	s := Summarize(results)
	_, err := fmt.Fprintf(w, "%d trials: %d accepted, %d rejected, %d failed\n",
		s.Total, s.Accepted, s.Rejected, s.Failed)
	return err
}

func oneLine(s string) string {
	if s == "" {
		return `""`
	}
	return strings.Join(strings.Fields(s), " ")
}

func round(d time.Duration) time.Duration {
	if d < time.Millisecond {
		return d
	}
	return d.Round(time.Millisecond)
}
