package trialfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/payprobe/pkg/probe"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trials.toml")
	write := func(doc string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("[[trial]]\nlabel = 'first'\nbody = '{}'\n")

	w, err := NewWatcher(path, "key", 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher() unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan []probe.Trial, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, trials []probe.Trial) { got <- trials })
	}()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	// A broken edit is skipped, the next good one is delivered.
	write("[[trial]]\nlabel = 'broken'\nbody = '{'\n")
	time.Sleep(100 * time.Millisecond)
	write("[[trial]]\nlabel = 'second'\nbody = '{}'\n")

	select {
	case trials := <-got:
		if len(trials) != 1 || trials[0].Label != "second" {
			t.Errorf("reloaded trials = %+v, want [second]", trials)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "trials.toml")
	if _, err := NewWatcher(path, "key", 0, nil); err == nil {
		t.Fatal("NewWatcher() expected error for missing directory")
	}
}
