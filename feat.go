package termstyle

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnsupportedFeature is returned by Feat for names missing from the map.
var ErrUnsupportedFeature = errors.New("feature is not supported")

// Colors maps color feature names to their ANSI escape sequences. Plain
// names select the foreground, "bd " prefixed names the bold foreground,
// "bg " prefixed names the background, and "bright " names the high
// intensity variant.
var Colors = map[string]string{
	"black":   "\x1b[30m",
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
	"white":   "\x1b[37m",

	"bright black":   "\x1b[90m",
	"bright red":     "\x1b[91m",
	"bright green":   "\x1b[92m",
	"bright yellow":  "\x1b[93m",
	"bright blue":    "\x1b[94m",
	"bright magenta": "\x1b[95m",
	"bright cyan":    "\x1b[96m",
	"bright white":   "\x1b[97m",

	"bd black":   "\x1b[1;30m",
	"bd red":     "\x1b[1;31m",
	"bd green":   "\x1b[1;32m",
	"bd yellow":  "\x1b[1;33m",
	"bd blue":    "\x1b[1;34m",
	"bd magenta": "\x1b[1;35m",
	"bd cyan":    "\x1b[1;36m",
	"bd white":   "\x1b[1;37m",

	"bg black":   "\x1b[40m",
	"bg red":     "\x1b[41m",
	"bg green":   "\x1b[42m",
	"bg yellow":  "\x1b[43m",
	"bg blue":    "\x1b[44m",
	"bg magenta": "\x1b[45m",
	"bg cyan":    "\x1b[46m",
	"bg white":   "\x1b[47m",
}

// Styles maps style feature names to their ANSI escape sequences.
var Styles = map[string]string{
	"bold":      "\x1b[1m",
	"faint":     "\x1b[2m",
	"italics":   "\x1b[3m",
	"underline": "\x1b[4m",
	"blink":     "\x1b[5m",
	"inverse":   "\x1b[7m",
	"hide":      "\x1b[8m",
	"strike":    "\x1b[9m",
}

// Resets maps reset feature names to the sequences that undo colors and
// styles. "all" clears every attribute.
var Resets = map[string]string{
	"all":       "\x1b[0m",
	"color":     "\x1b[39m",
	"bg color":  "\x1b[49m",
	"bold":      "\x1b[22m",
	"faint":     "\x1b[22m",
	"italics":   "\x1b[23m",
	"underline": "\x1b[24m",
	"blink":     "\x1b[25m",
	"inverse":   "\x1b[27m",
	"hide":      "\x1b[28m",
	"strike":    "\x1b[29m",
}

// Reset is the escape sequence clearing every color and style attribute.
const Reset = "\x1b[0m"

// Feat returns the escape sequence registered in m under name.
//
// Returns an error wrapping ErrUnsupportedFeature when the name is missing,
// carrying the name so callers can report it.
func Feat(m map[string]string, name string) (string, error) {
	seq, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFeature, name)
	}
	return seq, nil
}

// MustFeat is Feat for feature names known at compile time; it panics on
// unknown names.
func MustFeat(m map[string]string, name string) string {
	seq, err := Feat(m, name)
	if err != nil {
		panic(err)
	}
	return seq
}

// Color256 returns the foreground escape for one of the 256 indexed colors.
func Color256(n uint8) string {
	return fmt.Sprintf("\x1b[38;5;%dm", n)
}

// Color256Bg returns the background escape for one of the 256 indexed colors.
func Color256Bg(n uint8) string {
	return fmt.Sprintf("\x1b[48;5;%dm", n)
}

// TrueColor returns the 24-bit foreground escape for an RGB triple.
func TrueColor(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// TrueColorBg returns the 24-bit background escape for an RGB triple.
func TrueColorBg(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

// Blend returns the true-color escape for the point t in [0, 1] along the
// perceptual gradient between two hex colors such as "#ff0000".
func Blend(from, to string, t float64) (string, error) {
	a, err := colorful.Hex(from)
	if err != nil {
		return "", fmt.Errorf("gradient start: %w", err)
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return "", fmt.Errorf("gradient end: %w", err)
	}

	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	c := a.BlendLuv(b, t).Clamped()
	r8, g8, b8 := c.RGB255()
	return TrueColor(r8, g8, b8), nil
}
