package termstyle

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ProgressBar renders an in-place progress indicator by rewriting the
// current terminal line on every update. Safe for concurrent updates.
//
// Captured by an OutputRedirector with the PlainText formatter, the
// carriage-return rewrites collapse so only the last drawn state reaches
// the file.
type ProgressBar struct {
	mu sync.Mutex

	w        io.Writer
	min      float64
	max      float64
	width    int
	brackets [2]string
	fill     string
	empty    string
	feat     string
	message  string
	percent  bool

	lastWidth int
}

// ProgressOption configures a ProgressBar.
type ProgressOption func(*ProgressBar)

// WithProgressWriter sets the destination. Defaults to os.Stdout.
func WithProgressWriter(w io.Writer) ProgressOption {
	return func(b *ProgressBar) { b.w = w }
}

// WithProgressWidth sets the bar body width in cells. Defaults to 40.
// Zero hides the bar and leaves only the percentage.
func WithProgressWidth(width int) ProgressOption {
	return func(b *ProgressBar) {
		b.width = width
	}
}

// WithProgressBrackets sets the strings enclosing the bar body.
func WithProgressBrackets(open, close string) ProgressOption {
	return func(b *ProgressBar) { b.brackets = [2]string{open, close} }
}

// WithProgressFill sets the filled and empty cell markers.
func WithProgressFill(fill, empty string) ProgressOption {
	return func(b *ProgressBar) {
		b.fill = fill
		b.empty = empty
	}
}

// WithProgressFeat styles the filled part of the bar, e.g.
// MustFeat(Colors, "green").
func WithProgressFeat(feats ...string) ProgressOption {
	return func(b *ProgressBar) { b.feat = strings.Join(feats, "") }
}

// WithProgressMessage sets the label drawn before the bar.
func WithProgressMessage(msg string) ProgressOption {
	return func(b *ProgressBar) { b.message = msg }
}

// WithoutPercentage hides the trailing percentage.
func WithoutPercentage() ProgressOption {
	return func(b *ProgressBar) { b.percent = false }
}

// NewProgressBar creates a bar covering the value range [min, max].
func NewProgressBar(min, max float64, opts ...ProgressOption) *ProgressBar {
	b := &ProgressBar{
		w:        os.Stdout,
		min:      min,
		max:      max,
		width:    40,
		brackets: [2]string{"[", "]"},
		fill:     "#",
		empty:    " ",
		percent:  true,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// SetMessage changes the label drawn before the bar. Takes effect on the
// next update.
func (b *ProgressBar) SetMessage(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.message = msg
}

// Reset clears the message and style and forgets the last drawn width, so
// the bar can be reused for a new run.
func (b *ProgressBar) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.message = ""
	b.feat = ""
	b.lastWidth = 0
}

// Update redraws the bar for value v, clamped to the bar's range.
func (b *ProgressBar) Update(v float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	ratio := 0.0
	if b.max > b.min {
		ratio = (v - b.min) / (b.max - b.min)
	}
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	var plain, styled strings.Builder
	write := func(s string) {
		plain.WriteString(s)
		styled.WriteString(s)
	}

	if b.message != "" {
		write(b.message)
		write(" ")
	}

	if b.width > 0 {
		filled := int(ratio * float64(b.width))
		write(b.brackets[0])

		fill := strings.Repeat(b.fill, filled)
		plain.WriteString(fill)
		if b.feat != "" {
			styled.WriteString(b.feat)
			styled.WriteString(fill)
			styled.WriteString(Reset)
		} else {
			styled.WriteString(fill)
		}

		write(strings.Repeat(b.empty, b.width-filled))
		write(b.brackets[1])
	}

	if b.percent {
		write(fmt.Sprintf(" %3.0f%%", ratio*100))
	}

	// Blank out leftovers when the previous draw was wider. Width is
	// measured on the unstyled text so escapes do not count as cells.
	width := StringWidth(plain.String())
	pad := b.lastWidth - width
	if pad < 0 {
		pad = 0
	}
	b.lastWidth = width

	_, err := fmt.Fprintf(b.w, "\r%s%s", styled.String(), strings.Repeat(" ", pad))
	return err
}

// Finish draws the completed bar and moves to the next line.
func (b *ProgressBar) Finish() error {
	if err := b.Update(b.max); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastWidth = 0
	_, err := io.WriteString(b.w, "\n")
	return err
}

// Spinner renders a rotating activity indicator on the current line.
// Safe for concurrent use.
type Spinner struct {
	mu sync.Mutex

	w       io.Writer
	frames  []string
	feat    string
	message string
	step    int
}

// NewSpinner creates a spinner writing to w with the classic |/-\ frames.
func NewSpinner(w io.Writer, feats ...string) *Spinner {
	return &Spinner{
		w:      w,
		frames: []string{"|", "/", "-", "\\"},
		feat:   strings.Join(feats, ""),
	}
}

// SetMessage sets the label drawn after the spinner frame.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
}

// Spin draws the next frame.
func (s *Spinner) Spin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := s.frames[s.step%len(s.frames)]
	s.step++

	if s.feat != "" {
		frame = s.feat + frame + Reset
	}

	_, err := fmt.Fprintf(s.w, "\r%s %s", frame, s.message)
	return err
}

// Done clears the spinner line.
func (s *Spinner) Done() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	width := 2 + StringWidth(s.message)
	_, err := fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width))
	return err
}
