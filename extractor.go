package termstyle

import (
	"image/color"
	"strings"

	"github.com/danielgatis/go-ansicode"
)

// Ensure textExtractor implements ansicode.Handler
var _ ansicode.Handler = (*textExtractor)(nil)

// textExtractor is an ansicode.Handler that keeps only what a terminal
// viewer would leave on screen for a sequential text stream: printable
// runes and line structure. Cursor addressing, modes, colors, and device
// queries are consumed and dropped.
//
// Unlike a grid emulator it has no fixed width or height; output is an
// unbounded list of lines with a write column on the last one.
type textExtractor struct {
	lines [][]rune
	col   int
}

func newTextExtractor() *textExtractor {
	return &textExtractor{lines: [][]rune{nil}}
}

// String joins the extracted lines. A trailing LF in the input shows up as
// a trailing newline here, so round-trips stay byte-faithful for plain text.
func (e *textExtractor) String() string {
	var sb strings.Builder
	for i, line := range e.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func (e *textExtractor) line() []rune {
	return e.lines[len(e.lines)-1]
}

func (e *textExtractor) setLine(line []rune) {
	e.lines[len(e.lines)-1] = line
}

// Input writes r at the current column, overwriting what a previous
// carriage return left behind.
func (e *textExtractor) Input(r rune) {
	line := e.line()
	for len(line) < e.col {
		line = append(line, ' ')
	}
	if e.col < len(line) {
		line[e.col] = r
	} else {
		line = append(line, r)
	}
	e.setLine(line)
	e.col++
}

// CarriageReturn moves the write column back to the start of the line.
func (e *textExtractor) CarriageReturn() {
	e.col = 0
}

// LineFeed opens a new line. Captured program output uses bare LF as the
// line terminator, so LF implies a carriage return here.
func (e *textExtractor) LineFeed() {
	e.lines = append(e.lines, nil)
	e.col = 0
}

// Backspace moves the write column one cell left.
func (e *textExtractor) Backspace() {
	if e.col > 0 {
		e.col--
	}
}

// Tab advances to the next multiple-of-8 column, n times.
func (e *textExtractor) Tab(n int) {
	for i := 0; i < n; i++ {
		next := (e.col/8 + 1) * 8
		line := e.line()
		for len(line) < next {
			line = append(line, ' ')
		}
		e.setLine(line)
		e.col = next
	}
}

// ClearLine erases within the current line relative to the write column.
func (e *textExtractor) ClearLine(mode ansicode.LineClearMode) {
	line := e.line()
	switch mode {
	case ansicode.LineClearModeRight:
		if e.col < len(line) {
			e.setLine(line[:e.col])
		}
	case ansicode.LineClearModeLeft:
		for i := 0; i < len(line) && i <= e.col; i++ {
			line[i] = ' '
		}
	case ansicode.LineClearModeAll:
		e.setLine(nil)
		e.col = 0
	}
}

// Everything below is consumed without effect: a persisted text file has no
// screen to address, no modes, and nothing to answer queries with.

func (e *textExtractor) ApplicationCommandReceived(data []byte)  {}
func (e *textExtractor) Bell()                                   {}
func (e *textExtractor) CellSizePixels()                         {}
func (e *textExtractor) ClearScreen(mode ansicode.ClearMode)     {}
func (e *textExtractor) ClearTabs(mode ansicode.TabulationClearMode) {
}
func (e *textExtractor) ClipboardLoad(clipboard byte, terminator string) {}
func (e *textExtractor) ClipboardStore(clipboard byte, data []byte)      {}
func (e *textExtractor) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {
}
func (e *textExtractor) Decaln()                          {}
func (e *textExtractor) DeleteChars(n int)                {}
func (e *textExtractor) DeleteLines(n int)                {}
func (e *textExtractor) DeviceStatus(n int)               {}
func (e *textExtractor) EraseChars(n int)                 {}
func (e *textExtractor) Goto(row, col int)                {}
func (e *textExtractor) GotoCol(col int)                  {}
func (e *textExtractor) GotoLine(row int)                 {}
func (e *textExtractor) HorizontalTabSet()                {}
func (e *textExtractor) IdentifyTerminal(b byte)          {}
func (e *textExtractor) InsertBlank(n int)                {}
func (e *textExtractor) InsertBlankLines(n int)           {}
func (e *textExtractor) MoveBackward(n int)               {}
func (e *textExtractor) MoveBackwardTabs(n int)           {}
func (e *textExtractor) MoveDown(n int)                   {}
func (e *textExtractor) MoveDownCr(n int)                 {}
func (e *textExtractor) MoveForward(n int)                {}
func (e *textExtractor) MoveForwardTabs(n int)            {}
func (e *textExtractor) MoveUp(n int)                     {}
func (e *textExtractor) MoveUpCr(n int)                   {}
func (e *textExtractor) PopKeyboardMode(n int)            {}
func (e *textExtractor) PopTitle()                        {}
func (e *textExtractor) PrivacyMessageReceived(data []byte) {
}
func (e *textExtractor) PushKeyboardMode(mode ansicode.KeyboardMode) {}
func (e *textExtractor) PushTitle()                                  {}
func (e *textExtractor) ReportKeyboardMode()                         {}
func (e *textExtractor) ReportModifyOtherKeys()                      {}
func (e *textExtractor) ResetColor(i int)                            {}
func (e *textExtractor) ResetState()                                 {}
func (e *textExtractor) RestoreCursorPosition()                      {}
func (e *textExtractor) ReverseIndex()                               {}
func (e *textExtractor) SaveCursorPosition()                         {}
func (e *textExtractor) ScrollDown(n int)                            {}
func (e *textExtractor) ScrollUp(n int)                              {}
func (e *textExtractor) SetActiveCharset(n int)                      {}
func (e *textExtractor) SetColor(index int, c color.Color)           {}
func (e *textExtractor) SetCursorStyle(style ansicode.CursorStyle)   {}
func (e *textExtractor) SetDynamicColor(prefix string, index int, terminator string) {
}
func (e *textExtractor) SetHyperlink(hyperlink *ansicode.Hyperlink) {}
func (e *textExtractor) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
}
func (e *textExtractor) SetKeypadApplicationMode()         {}
func (e *textExtractor) SetMode(mode ansicode.TerminalMode) {
}
func (e *textExtractor) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}
func (e *textExtractor) SetScrollingRegion(top, bottom int)                 {}
func (e *textExtractor) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
}
func (e *textExtractor) SetTitle(title string)                        {}
func (e *textExtractor) SixelReceived(params [][]uint16, data []byte) {}
func (e *textExtractor) StartOfStringReceived(data []byte)            {}
func (e *textExtractor) Substitute()                                  {}
func (e *textExtractor) TextAreaSizeChars()                           {}
func (e *textExtractor) TextAreaSizePixels()                          {}
func (e *textExtractor) UnsetKeypadApplicationMode()                  {}
func (e *textExtractor) UnsetMode(mode ansicode.TerminalMode)         {}
