// Package log is the structured logging seam used by payprobe.
//
// Library code (the probe runner, the trial file watcher) logs through the
// Logger interface and defaults to a NoopLogger, so embedding payprobe never
// writes to the terminal unless the caller asks for it. The CLI wires a
// zerolog-backed adapter writing to stderr:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Info("probe finished", log.Int("trials", 4))
//
// Probe reports are not log lines. They are written by internal/report to
// stdout and stay plain text.
package log
