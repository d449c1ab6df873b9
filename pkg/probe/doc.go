// Package probe sends candidate request bodies to a single HTTP endpoint and
// records how the endpoint answered each one.
//
// A probe run is a list of Trials (label, ordered headers, JSON body). The
// Runner POSTs them one after another, waiting for each response or timeout
// before starting the next, and produces exactly one ProbeResult per Trial in
// input order. Nothing short of a constraint violation stops a run:
//
//   - transport failures and timeouts are recorded as failed results,
//   - non-2xx responses are recorded with their raw body,
//   - 2xx bodies that are not a JSON object are recorded with raw text only.
//
// For 2xx JSON objects the runner looks up a transaction id, a PIX payment
// code and a PIX QR-code payload. Missing keys are a normal outcome and show
// up as Lookup.Found == false.
//
// # Usage
//
//	runner, err := probe.New("https://gateway.example/api/v1/transaction.purchase",
//	    10*time.Second,
//	    probe.WithReporter(reporter),
//	)
//	if err != nil {
//	    return err
//	}
//	results, err := runner.Run(ctx, trials)
//
// Endpoint, timeout and credentials are inputs of the caller; the package
// holds no process-wide state.
package probe
