package cmd

import (
	"syscall"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

// APIServer must return on SIGTERM instead of exiting the process, so the
// caller's deferred cleanup runs.
func TestAPIServerStopsOnSignal(t *testing.T) {
	done := make(chan struct{})
	go func() {
		APIServer(chi.NewRouter(), "0")
		close(done)
	}()

	// Give the server time to bind and register its signal handler
	time.Sleep(200 * time.Millisecond)

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("send SIGTERM: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after SIGTERM")
	}
}
