package cli

import (
	"bytes"
	"os"
	"testing"
)

// captureStdout swaps os.Stdout for a pipe so command output can be
// asserted on. The returned function restores stdout and yields what was
// written. A goroutine drains the pipe while the command runs, so output
// larger than the pipe buffer cannot deadlock.
func captureStdout(t *testing.T) func() string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		_, _ = buf.ReadFrom(r)
		close(done)
	}()

	return func() string {
		_ = w.Close()
		<-done
		os.Stdout = old
		return buf.String()
	}
}
