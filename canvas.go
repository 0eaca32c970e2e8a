package termstyle

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Canvas drawing errors.
var (
	// ErrOutOfBounds is returned by Put for coordinates outside the canvas.
	ErrOutOfBounds = errors.New("coordinates outside the canvas")

	// ErrWideRune is returned by Put for runes that do not occupy exactly
	// one terminal cell and would misalign the grid.
	ErrWideRune = errors.New("rune does not fit a single cell")
)

// FrameStyle selects the border drawn around a canvas.
type FrameStyle int

const (
	// FrameEmpty draws no border.
	FrameEmpty FrameStyle = iota
	// FrameASCII draws a +---+ border.
	FrameASCII
	// FrameBox draws a box-drawing border.
	FrameBox
)

// Canvas is a character grid drawn cell by cell and rendered as styled
// text. The origin (0, 0) is the bottom-left corner. A Canvas is not safe
// for concurrent use.
type Canvas struct {
	width  int
	height int
	chars  []rune
	feats  []string

	bgChar rune
	bgFeat string

	frame     FrameStyle
	frameFeat string
}

// NewCanvas creates a width x height canvas filled with spaces and no frame.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		chars:  make([]rune, width*height),
		feats:  make([]string, width*height),
		bgChar: ' ',
	}
	c.Clear()
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// SetBackground sets the rune and feats that Clear fills the canvas with.
func (c *Canvas) SetBackground(r rune, feats ...string) {
	c.bgChar = r
	c.bgFeat = strings.Join(feats, "")
}

// SetFrame sets the border style and the feats it is drawn with.
func (c *Canvas) SetFrame(style FrameStyle, feats ...string) {
	c.frame = style
	c.frameFeat = strings.Join(feats, "")
}

// Clear fills every cell with the background.
func (c *Canvas) Clear() {
	for i := range c.chars {
		c.chars[i] = c.bgChar
		c.feats[i] = c.bgFeat
	}
}

// Put draws r at (x, y) with the given feats. y grows upward.
func (c *Canvas) Put(x, y int, r rune, feats ...string) error {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return fmt.Errorf("%w: (%d, %d) on %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	if runeWidth(r) != 1 {
		return fmt.Errorf("%w: %q", ErrWideRune, r)
	}

	i := (c.height-1-y)*c.width + x
	c.chars[i] = r
	c.feats[i] = strings.Join(feats, "")
	return nil
}

// At returns the rune and feats at (x, y), or the background for
// out-of-bounds coordinates.
func (c *Canvas) At(x, y int) (rune, string) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return c.bgChar, c.bgFeat
	}
	i := (c.height-1-y)*c.width + x
	return c.chars[i], c.feats[i]
}

// String renders the canvas top row first, each styled cell followed by a
// reset so feats never leak between cells, with the frame if one is set.
func (c *Canvas) String() string {
	var sb strings.Builder

	h, v, tl, tr, bl, br := c.frameRunes()

	if c.frame != FrameEmpty {
		c.writeFrameRow(&sb, tl, h, tr)
	}

	for row := 0; row < c.height; row++ {
		if c.frame != FrameEmpty {
			c.writeFrameCell(&sb, v)
		}
		for col := 0; col < c.width; col++ {
			i := row*c.width + col
			if c.feats[i] != "" {
				sb.WriteString(c.feats[i])
				sb.WriteRune(c.chars[i])
				sb.WriteString(Reset)
			} else {
				sb.WriteRune(c.chars[i])
			}
		}
		if c.frame != FrameEmpty {
			c.writeFrameCell(&sb, v)
		}
		sb.WriteByte('\n')
	}

	if c.frame != FrameEmpty {
		c.writeFrameRow(&sb, bl, h, br)
	}

	return sb.String()
}

// Display writes the rendered canvas to w.
func (c *Canvas) Display(w io.Writer) error {
	_, err := io.WriteString(w, c.String())
	return err
}

func (c *Canvas) frameRunes() (h, v, tl, tr, bl, br rune) {
	switch c.frame {
	case FrameASCII:
		return '-', '|', '+', '+', '+', '+'
	case FrameBox:
		return '─', '│', '┌', '┐', '└', '┘'
	default:
		return 0, 0, 0, 0, 0, 0
	}
}

func (c *Canvas) writeFrameRow(sb *strings.Builder, left, fill, right rune) {
	c.writeFrameCell(sb, left)
	for i := 0; i < c.width; i++ {
		c.writeFrameCell(sb, fill)
	}
	c.writeFrameCell(sb, right)
	sb.WriteByte('\n')
}

func (c *Canvas) writeFrameCell(sb *strings.Builder, r rune) {
	if c.frameFeat != "" {
		sb.WriteString(c.frameFeat)
		sb.WriteRune(r)
		sb.WriteString(Reset)
		return
	}
	sb.WriteRune(r)
}
