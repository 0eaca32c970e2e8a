package termstyle

import "fmt"

// Direction selects the movement axis for MoveCursor.
type Direction string

// Directions accepted by MoveCursor.
const (
	Up    Direction = "up"
	Down  Direction = "down"
	Right Direction = "right"
	Left  Direction = "left"
)

// Cursor visibility escapes.
const (
	ShowCursor = "\x1b[?25h"
	HideCursor = "\x1b[?25l"
)

// Screen and line clearing escapes.
const (
	ClearScreenAll   = "\x1b[2J"
	ClearScreenBelow = "\x1b[0J"
	ClearScreenAbove = "\x1b[1J"
	ClearLineAll     = "\x1b[2K"
	ClearLineRight   = "\x1b[0K"
	ClearLineLeft    = "\x1b[1K"
	CursorHome       = "\x1b[H"
)

// GoTo returns the escape positioning the cursor at column x, row y.
// Coordinates are 1-based, matching the CUP sequence.
func GoTo(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y, x)
}

// MoveCursor returns the escape moving the cursor n cells in the given
// direction. Returns an error wrapping ErrUnsupportedFeature for an unknown
// direction.
func MoveCursor(dir Direction, n int) (string, error) {
	var code byte
	switch dir {
	case Up:
		code = 'A'
	case Down:
		code = 'B'
	case Right:
		code = 'C'
	case Left:
		code = 'D'
	default:
		return "", fmt.Errorf("%w: cursor direction %q", ErrUnsupportedFeature, dir)
	}
	return fmt.Sprintf("\x1b[%d%c", n, code), nil
}
