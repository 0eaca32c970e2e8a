package termstyle

import "github.com/danielgatis/go-ansicode"

// Formatter converts raw captured bytes into the string persisted to the
// target file.
type Formatter interface {
	Format(s string) (string, error)
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(s string) (string, error)

// Format calls f.
func (f FormatterFunc) Format(s string) (string, error) {
	return f(s)
}

// Passthrough returns the Formatter that persists the captured bytes
// unchanged, styling escapes included. This is the default: a `cat` of the
// file reproduces the colors the terminal would have shown.
func Passthrough() Formatter {
	return FormatterFunc(func(s string) (string, error) {
		return s, nil
	})
}

// PlainText returns the Formatter that renders the capture the way a
// terminal viewer would display it, then discards the styling: escape
// sequences are decoded rather than stripped, so carriage-return overwrites
// (progress bars), backspaces, and tabs collapse into the text they leave
// visible.
func PlainText() Formatter {
	return FormatterFunc(func(s string) (string, error) {
		ex := newTextExtractor()
		decoder := ansicode.NewDecoder(ex)
		if _, err := decoder.Write([]byte(s)); err != nil {
			return "", err
		}
		return ex.String(), nil
	})
}
