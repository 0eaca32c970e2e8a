package termstyle

import "math"

// Plot2DCanvas plots functions of one real variable onto a Canvas. Besides
// the grid it carries an offset and a scale: the offset is the first x and
// y value represented, the scale is how much of the function's domain and
// range one cell covers. A canvas of size (15, 10) with offset (3, 2) and
// scale (7, 5) shows x in [3, 108) and y in [2, 52).
type Plot2DCanvas struct {
	Canvas

	offsetX float64
	offsetY float64
	scaleX  float64
	scaleY  float64
}

// NewPlot2DCanvas creates a plotting canvas with offset (0, 0) and unit scale.
func NewPlot2DCanvas(width, height int) *Plot2DCanvas {
	p := &Plot2DCanvas{
		Canvas: *NewCanvas(width, height),
		scaleX: 1,
		scaleY: 1,
	}
	return p
}

// SetOffset sets the first x and y values represented by the canvas.
func (p *Plot2DCanvas) SetOffset(x, y float64) {
	p.offsetX = x
	p.offsetY = y
}

// SetScale sets the x and y span a single cell covers. Values that are not
// positive are ignored; the column math needs a growing x axis.
func (p *Plot2DCanvas) SetScale(x, y float64) {
	if x > 0 {
		p.scaleX = x
	}
	if y > 0 {
		p.scaleY = y
	}
}

// OffsetX returns the first represented x value.
func (p *Plot2DCanvas) OffsetX() float64 { return p.offsetX }

// OffsetY returns the first represented y value.
func (p *Plot2DCanvas) OffsetY() float64 { return p.offsetY }

// ScaleX returns the x span of one cell.
func (p *Plot2DCanvas) ScaleX() float64 { return p.scaleX }

// ScaleY returns the y span of one cell.
func (p *Plot2DCanvas) ScaleY() float64 { return p.scaleY }

// Draw plots f across the visible domain, marking each column whose value
// falls inside the canvas with r and the given feats. Returns ErrWideRune
// if r does not fit a single cell.
func (p *Plot2DCanvas) Draw(f func(float64) float64, r rune, feats ...string) error {
	for _, x := range p.columns() {
		realX := p.offsetX + float64(x)*p.scaleX
		y := int((f(realX) - p.offsetY) / p.scaleY)
		if y <= 0 || y >= p.height {
			continue
		}
		if err := p.Put(x, y, r, feats...); err != nil {
			return err
		}
	}
	return nil
}

// DrawGradient plots f like Draw, coloring each mark by its height along
// the perceptual gradient between two hex colors.
func (p *Plot2DCanvas) DrawGradient(f func(float64) float64, r rune, fromHex, toHex string) error {
	for _, x := range p.columns() {
		realX := p.offsetX + float64(x)*p.scaleX
		y := int((f(realX) - p.offsetY) / p.scaleY)
		if y <= 0 || y >= p.height {
			continue
		}

		feat, err := Blend(fromHex, toHex, float64(y)/float64(p.height-1))
		if err != nil {
			return err
		}
		if err := p.Put(x, y, r, feat); err != nil {
			return err
		}
	}
	return nil
}

// columns returns the x cells whose real coordinates fall inside the
// canvas, clamped the same way for every draw call.
func (p *Plot2DCanvas) columns() []int {
	min := int(math.Floor((0 - p.offsetX) / p.scaleX))
	if min < 0 {
		min = 0
	}
	max := int(math.Ceil((float64(p.width) - p.offsetX) / p.scaleX))
	if max > p.width {
		max = p.width
	}
	if max < min {
		// The visible domain starts past the canvas; nothing to draw.
		max = min
	}

	cols := make([]int, 0, max-min)
	for x := min; x < max; x++ {
		cols = append(cols, x)
	}
	return cols
}
