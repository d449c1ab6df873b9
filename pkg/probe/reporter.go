package probe

// Reporter receives each ProbeResult as soon as its trial finishes.
// Calls happen on the goroutine running the probe, in trial order.
type Reporter interface {
	Report(result ProbeResult)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(result ProbeResult)

// Report calls f(result).
func (f ReporterFunc) Report(result ProbeResult) { f(result) }

// Discard is a Reporter that ignores results.
var Discard Reporter = ReporterFunc(func(ProbeResult) {})
