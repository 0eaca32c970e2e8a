package termstyle

import (
	"io"
	"os"
	"sync"
)

// Target is a swappable output destination. Installing a writer redirects
// everything the destination receives into that writer until the returned
// restore function is called.
//
// The process has exactly one standard output; modeling it as a Target keeps
// that piece of global state explicit and lets tests capture a fake sink
// instead.
type Target interface {
	// Install redirects the target into w. The returned restore function
	// puts the previous destination back and blocks until writes already
	// in flight have been delivered to w. Restore must be called exactly
	// once.
	Install(w io.Writer) (restore func() error, err error)
}

// Stdout returns the Target backed by the process-wide os.Stdout.
//
// Installing swaps os.Stdout for the write end of a pipe and pumps the read
// end into the installed writer, so anything written through the fmt/os
// family lands in the writer. Writes to file descriptor 1 made below the Go
// runtime are not captured.
func Stdout() Target {
	return stdoutTarget{}
}

type stdoutTarget struct{}

func (stdoutTarget) Install(w io.Writer) (func() error, error) {
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	saved := os.Stdout
	os.Stdout = pw

	done := make(chan error, 1)
	go func() {
		_, cerr := io.Copy(w, pr)
		pr.Close()
		done <- cerr
	}()

	restore := func() error {
		os.Stdout = saved
		pw.Close() // unblocks the pump once the pipe drains
		return <-done
	}

	return restore, nil
}

// WriterTarget is a Target over an ordinary io.Writer slot. Programs that
// route output through a WriterTarget instead of a global stream get the
// same capture semantics without touching process state, which also makes
// it the natural fake for tests.
type WriterTarget struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterTarget returns a WriterTarget that forwards to w until a capture
// is installed.
func NewWriterTarget(w io.Writer) *WriterTarget {
	return &WriterTarget{w: w}
}

// Write forwards to the currently installed destination.
func (t *WriterTarget) Write(p []byte) (int, error) {
	t.mu.Lock()
	w := t.w
	t.mu.Unlock()
	return w.Write(p)
}

// Install swaps the destination for w and returns a restore function that
// swaps the previous one back.
func (t *WriterTarget) Install(w io.Writer) (func() error, error) {
	t.mu.Lock()
	saved := t.w
	t.w = w
	t.mu.Unlock()

	restore := func() error {
		t.mu.Lock()
		t.w = saved
		t.mu.Unlock()
		return nil
	}

	return restore, nil
}
