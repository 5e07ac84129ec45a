package core

import "math"

// Surface is a 2D drawing target in logical canvas units.
// Drawing uses the current fill color, like a canvas 2D context.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
	FillText(text string, x, y float64)
	SetFillColor(c Color)
}

// Glyphs used when rasterizing shapes into cells.
const (
	FillRune   = '█'
	CircleRune = '●'
)

// ScreenSurface rasterizes a logical canvas onto a Screen, scaling both axes
// so the whole canvas fits the screen.
type ScreenSurface struct {
	screen  *Screen
	logical RectF
	fill    Color
}

// NewScreenSurface creates a surface mapping a logicalW x logicalH canvas onto dst.
func NewScreenSurface(dst *Screen, logicalW, logicalH float64) *ScreenSurface {
	return &ScreenSurface{
		screen:  dst,
		logical: RectF{W: logicalW, H: logicalH},
	}
}

// toCol converts a logical x coordinate to fractional columns.
// Multiplying before dividing keeps exact canvas multiples exact.
func (s *ScreenSurface) toCol(x float64) float64 {
	if s.logical.W <= 0 {
		return 0
	}
	return x * float64(s.screen.Width()) / s.logical.W
}

// toRow converts a logical y coordinate to fractional rows.
func (s *ScreenSurface) toRow(y float64) float64 {
	if s.logical.H <= 0 {
		return 0
	}
	return y * float64(s.screen.Height()) / s.logical.H
}

// cellSpan converts fractional cell bounds [lo, hi) into whole cells.
// A non-empty range always covers at least one cell.
func cellSpan(lo, hi float64) (int, int) {
	first := int(math.Floor(lo))
	last := int(math.Ceil(hi))
	if last <= first {
		last = first + 1
	}
	return first, last
}

// SetFillColor sets the color used by subsequent fill calls.
func (s *ScreenSurface) SetFillColor(c Color) {
	s.fill = c
}

// ClearRect blanks every cell touched by the logical rectangle.
func (s *ScreenSurface) ClearRect(x, y, w, h float64) {
	c0, c1 := cellSpan(s.toCol(x), s.toCol(x+w))
	r0, r1 := cellSpan(s.toRow(y), s.toRow(y+h))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.screen.SetCell(col, row, ' ', ColorDefault)
		}
	}
}

// FillRect fills every cell touched by the logical rectangle.
func (s *ScreenSurface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, c1 := cellSpan(s.toCol(x), s.toCol(x+w))
	r0, r1 := cellSpan(s.toRow(y), s.toRow(y+h))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.screen.SetCell(col, row, FillRune, s.fill)
		}
	}
}

// FillCircle fills cells whose centers fall inside the circle.
// A circle smaller than a cell still marks the cell holding its center.
func (s *ScreenSurface) FillCircle(cx, cy, r float64) {
	if s.logical.W <= 0 || s.logical.H <= 0 {
		return
	}
	cellW := s.logical.W / float64(s.screen.Width())
	cellH := s.logical.H / float64(s.screen.Height())

	marked := false
	c0, c1 := int(math.Floor(s.toCol(cx-r))), int(math.Floor(s.toCol(cx+r)))
	r0, r1 := int(math.Floor(s.toRow(cy-r))), int(math.Floor(s.toRow(cy+r)))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			dx := (float64(col)+0.5)*cellW - cx
			dy := (float64(row)+0.5)*cellH - cy
			if dx*dx+dy*dy <= r*r {
				s.screen.SetCell(col, row, CircleRune, s.fill)
				marked = true
			}
		}
	}

	if !marked {
		s.screen.SetCell(int(math.Floor(s.toCol(cx))), int(math.Floor(s.toRow(cy))), CircleRune, s.fill)
	}
}

// FillText writes text starting at the cell holding the logical baseline point.
func (s *ScreenSurface) FillText(text string, x, y float64) {
	col := int(math.Floor(s.toCol(x)))
	row := int(math.Floor(s.toRow(y)))
	s.screen.DrawTextColor(col, row, text, s.fill)
}

var _ Surface = (*ScreenSurface)(nil)
