package termstyle

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// DefaultRedirectFilename is the file an OutputRedirector writes to when no
// filename is configured.
const DefaultRedirectFilename = "redirected_output.txt"

// Errors reported by OutputRedirector operations.
var (
	// ErrAlreadyCapturing is returned by Start when a capture session is
	// already active. The saved output target is left untouched.
	ErrAlreadyCapturing = errors.New("output capture already started")

	// ErrNotCapturing is returned by Stop when no capture session is active.
	ErrNotCapturing = errors.New("output capture not started")

	// ErrFileUnavailable is returned when the target file can neither be
	// opened for reading nor created.
	ErrFileUnavailable = errors.New("could not open file")

	// ErrWriteFailure is returned when the merged contents cannot be
	// written back to the target file.
	ErrWriteFailure = errors.New("could not write file")
)

// OutputRedirector captures everything written to a process output target
// (os.Stdout by default) into an in-memory buffer and merges the buffer into
// a file on each flush.
//
// The merge keeps the file consistent with what a terminal viewer would have
// shown across repeated flushes: the file's last line is dropped before the
// newly captured text (passed through the configured Formatter) is appended,
// so the trailing framing left by a previous flush never accumulates.
//
// All methods are safe for concurrent use. The session mutex serializes
// Start and Stop, so a Start never installs while a previous session's
// restore or flush is still pending. The buffer mutex guards the filename,
// the capture buffer, and the saved-target handle; it is never held during
// target installs or restores and never while file I/O errors are returned
// to callers.
type OutputRedirector struct {
	session sync.Mutex

	mu       sync.Mutex
	filename string
	buf      *bytes.Buffer
	restore  func() error // non-nil exactly while capturing

	target    Target
	formatter Formatter
	logger    *slog.Logger
}

// RedirectorOption configures an OutputRedirector.
type RedirectorOption func(*OutputRedirector)

// WithFilename sets the target file the captured output is merged into.
func WithFilename(name string) RedirectorOption {
	return func(r *OutputRedirector) {
		r.filename = name
	}
}

// WithFormatter sets the Formatter applied to the captured text on each
// flush. Defaults to Passthrough.
func WithFormatter(f Formatter) RedirectorOption {
	return func(r *OutputRedirector) {
		r.formatter = f
	}
}

// WithTarget sets the output target to capture. Defaults to Stdout.
func WithTarget(t Target) RedirectorOption {
	return func(r *OutputRedirector) {
		r.target = t
	}
}

// WithLogger sets the logger used to report flush failures that occur while
// stopping a capture. Defaults to slog.Default.
func WithLogger(l *slog.Logger) RedirectorOption {
	return func(r *OutputRedirector) {
		r.logger = l
	}
}

// NewOutputRedirector creates a redirector writing to
// DefaultRedirectFilename unless WithFilename overrides it.
func NewOutputRedirector(opts ...RedirectorOption) *OutputRedirector {
	r := &OutputRedirector{
		filename:  DefaultRedirectFilename,
		buf:       &bytes.Buffer{},
		target:    Stdout(),
		formatter: Passthrough(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// SetFilename changes the target file. Takes effect on the next flush.
func (r *OutputRedirector) SetFilename(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filename = name
}

// Filename returns the current target file.
func (r *OutputRedirector) Filename() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filename
}

// Start saves the current output target, clears the capture buffer, and
// installs the buffer as the new destination. Everything the process writes
// to the target afterwards accumulates in memory until the next flush.
//
// Returns ErrAlreadyCapturing if a session is active; the first session and
// its saved target are left intact.
func (r *OutputRedirector) Start() error {
	r.session.Lock()
	defer r.session.Unlock()

	r.mu.Lock()
	if r.restore != nil {
		r.mu.Unlock()
		return ErrAlreadyCapturing
	}
	r.resetBuffer()
	r.mu.Unlock()

	restore, err := r.target.Install((*capturedWriter)(r))
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.restore = restore
	r.mu.Unlock()

	return nil
}

// Stop restores the real output target and flushes the capture buffer to
// the file. A flush failure is reported through the logger rather than
// returned, so stopping a capture never fails once a session is active.
//
// Returns ErrNotCapturing if Start was not called.
func (r *OutputRedirector) Stop() error {
	r.session.Lock()
	defer r.session.Unlock()

	r.mu.Lock()
	restore := r.restore
	r.restore = nil
	r.mu.Unlock()

	if restore == nil {
		return ErrNotCapturing
	}

	// The target may need to drain pending writes into the capture buffer,
	// which takes the buffer mutex. Restore outside that critical section;
	// the session mutex stays held so a concurrent Start cannot install
	// until the real target is back and the buffer is flushed.
	if err := restore(); err != nil {
		r.logger.Error("restoring output target", "error", err)
	}

	if err := r.Flush(); err != nil {
		r.logger.Error("flushing captured output", "file", r.Filename(), "error", err)
	}

	return nil
}

// Flush merges the captured text into the target file and clears the
// buffer: the file is created if absent, its last line is trimmed, and the
// formatted capture is appended in a full rewrite.
//
// Callable while capturing or not; with an empty buffer it only applies the
// trim rule. Errors wrap ErrFileUnavailable or ErrWriteFailure and carry
// the filename.
func (r *OutputRedirector) Flush() error {
	name := r.Filename()

	if err := touchFile(name); err != nil {
		return err
	}

	contents, err := readFile(name)
	if err != nil {
		return err
	}

	// Drop the trailing line a previous flush left as a terminal-style
	// framing marker, so repeated flushes do not stack them.
	contents = eraseLastLine(contents)

	r.mu.Lock()
	raw := ""
	if r.buf != nil {
		raw = r.buf.String()
	}
	formatted, ferr := r.formatter.Format(raw)
	r.mu.Unlock()
	if ferr != nil {
		return fmt.Errorf("formatting captured output: %w", ferr)
	}

	if err := writeFile(name, contents+formatted); err != nil {
		return err
	}

	r.mu.Lock()
	r.resetBuffer()
	r.mu.Unlock()

	return nil
}

// Touch guarantees the target file exists: it is opened for reading, or
// created empty when that fails. An existing file is never modified.
//
// Returns an error wrapping ErrFileUnavailable if the file can neither be
// read nor created.
func (r *OutputRedirector) Touch() error {
	return touchFile(r.Filename())
}

// Close stops an active capture so no buffered text is lost on teardown.
// Closing an idle redirector is a no-op.
func (r *OutputRedirector) Close() error {
	err := r.Stop()
	if errors.Is(err, ErrNotCapturing) {
		return nil
	}
	return err
}

// Captured returns the text accumulated since the last flush. Mostly useful
// in tests and diagnostics; the buffer keeps accumulating.
func (r *OutputRedirector) Captured() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.buf == nil {
		return ""
	}
	return r.buf.String()
}

// Capturing reports whether a capture session is active.
func (r *OutputRedirector) Capturing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.restore != nil
}

// resetBuffer empties the capture buffer, reallocating it if it was ever
// lost. Callers must hold r.mu.
func (r *OutputRedirector) resetBuffer() {
	if r.buf == nil {
		r.buf = &bytes.Buffer{}
		return
	}
	r.buf.Reset()
}

// capturedWriter is the io.Writer installed as the output target while
// capturing. Writes land in the redirector's buffer under its mutex.
type capturedWriter OutputRedirector

func (w *capturedWriter) Write(p []byte) (int, error) {
	r := (*OutputRedirector)(w)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.buf == nil {
		r.buf = &bytes.Buffer{}
	}
	return r.buf.Write(p)
}

// eraseLastLine removes the final newline-delimited segment of s, keeping
// the newline that ends the segment before it: "A\nB\nC\n" becomes "A\nB\n".
// A string without interior newlines erases to "".
func eraseLastLine(s string) string {
	s = strings.TrimSuffix(s, "\n")
	idx := strings.LastIndex(s, "\n")
	if idx < 0 {
		return ""
	}
	return s[:idx+1]
}

// touchFile opens name for reading, creating it empty when the open fails.
func touchFile(name string) error {
	f, err := os.Open(name)
	if err == nil {
		return f.Close()
	}

	f, err = os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w %q", ErrFileUnavailable, name)
	}
	return f.Close()
}

// readFile returns the full contents of name. No partial contents are
// returned on failure.
func readFile(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrFileUnavailable, name)
	}
	return string(data), nil
}

// writeFile replaces the contents of name, truncating what was there.
func writeFile(name, contents string) error {
	if err := os.WriteFile(name, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("%w %q: %v", ErrWriteFailure, name, err)
	}
	return nil
}
