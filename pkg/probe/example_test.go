package probe_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/bft-labs/payprobe/pkg/probe"
)

func ExampleRunner_Run() {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"message":"unauthorized"}`)
			return
		}
		io.WriteString(w, `{"id":"tx-1","pixCode":"000201"}`)
	}))
	defer gateway.Close()

	body := map[string]any{"paymentMethod": "PIX", "amount": 1000}
	trials := []probe.Trial{
		{Label: "raw key", Headers: []probe.Header{{Name: "Authorization", Value: "key"}}, Body: body},
		{Label: "bearer key", Headers: []probe.Header{{Name: "Authorization", Value: "Bearer key"}}, Body: body},
	}

	runner, err := probe.New(gateway.URL, 5*time.Second)
	if err != nil {
		fmt.Println(err)
		return
	}
	results, err := runner.Run(context.Background(), trials)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, res := range results {
		fmt.Printf("%s: %d id=%s pixCode=%s\n", res.Label, res.StatusCode, res.Fields.TransactionID, res.Fields.PixCode)
	}

	// Output:
	// raw key: 401 id=not found pixCode=not found
	// bearer key: 200 id=tx-1 pixCode=000201
}
