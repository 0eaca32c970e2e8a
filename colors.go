package termstyle

import (
	"image/color"
	"strconv"
	"strings"
)

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 colors (16-231) and grayscale (232-255) are generated below.
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// sgrColors resolves the foreground and background a sequence of SGR feats
// selects, against the given palette. Returns nil for channels the feats
// leave at their defaults. Non-SGR escapes in the input are ignored.
func sgrColors(feats string, palette *[256]color.RGBA) (fg, bg *color.RGBA) {
	bold := false

	for _, params := range sgrParams(feats) {
		for i := 0; i < len(params); i++ {
			n := params[i]
			switch {
			case n == 0:
				fg, bg, bold = nil, nil, false
			case n == 1:
				bold = true
			case n >= 30 && n <= 37:
				c := palette[n-30]
				fg = &c
			case n >= 90 && n <= 97:
				c := palette[n-90+8]
				fg = &c
			case n >= 40 && n <= 47:
				c := palette[n-40]
				bg = &c
			case n >= 100 && n <= 107:
				c := palette[n-100+8]
				bg = &c
			case n == 38 || n == 48:
				c, used := extendedColor(params[i+1:], palette)
				if c == nil {
					i = len(params)
					break
				}
				if n == 38 {
					fg = c
				} else {
					bg = c
				}
				i += used
			}
		}
	}

	if bold && fg != nil {
		// Bold promotes the 8 base colors to their bright variants.
		for idx := 0; idx < 8; idx++ {
			if *fg == palette[idx] {
				c := palette[idx+8]
				fg = &c
				break
			}
		}
	}

	return fg, bg
}

// extendedColor decodes the tail of a 38/48 SGR parameter list: "5;n" for
// indexed, "2;r;g;b" for direct color. Returns the color and how many
// parameters were consumed.
func extendedColor(params []int, palette *[256]color.RGBA) (*color.RGBA, int) {
	if len(params) >= 2 && params[0] == 5 {
		n := params[1]
		if n >= 0 && n < 256 {
			c := palette[n]
			return &c, 2
		}
		return nil, 2
	}
	if len(params) >= 4 && params[0] == 2 {
		c := color.RGBA{
			R: uint8(params[1]),
			G: uint8(params[2]),
			B: uint8(params[3]),
			A: 255,
		}
		return &c, 4
	}
	return nil, len(params)
}

// sgrParams extracts the parameter lists of all SGR ("...m") escape
// sequences in s. Other CSI sequences are skipped at their own final byte.
func sgrParams(s string) [][]int {
	var out [][]int

	for {
		start := strings.Index(s, "\x1b[")
		if start < 0 {
			return out
		}
		s = s[start+2:]

		end := 0
		for end < len(s) && (s[end] == ';' || (s[end] >= '0' && s[end] <= '9')) {
			end++
		}
		if end >= len(s) {
			return out
		}

		body := s[:end]
		final := s[end]
		s = s[end+1:]

		if final != 'm' {
			continue
		}

		var params []int
		for _, field := range strings.Split(body, ";") {
			if field == "" {
				params = append(params, 0)
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				params = nil
				break
			}
			params = append(params, n)
		}
		if len(params) > 0 {
			out = append(out, params)
		}
	}
}
