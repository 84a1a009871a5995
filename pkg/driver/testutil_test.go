package driver

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// stdoutForTest redirects os.Stdout to a pipe whose contents are copied
// into buf, for exercising performAction's print!/write! cases (which
// write directly to os.Stdout). The returned func restores the original
// os.Stdout and blocks until every byte has been copied into buf.
func stdoutForTest(t *testing.T, buf *bytes.Buffer) func() {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	original := os.Stdout
	os.Stdout = w
	done := make(chan struct{})
	go func() {
		io.Copy(buf, r)
		close(done)
	}()
	return func() {
		os.Stdout = original
		w.Close()
		<-done
		r.Close()
	}
}
