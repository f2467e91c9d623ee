package core

import "math"

// FillRune is the glyph used for filled shapes on a character canvas.
const FillRune = '█'

// DotRune marks shapes too small to cover any cell centre.
const DotRune = '•'

// Canvas rasterises field-coordinate shapes onto a character Screen.
// A cell is painted when its centre lies inside the shape. Drawing goes
// to a back buffer; Present copies it to the front buffer read by Frame.
type Canvas struct {
	back   *Screen
	front  *Screen
	fieldW float64
	fieldH float64
	bg     Color
}

// NewCanvas creates a canvas of cols x rows cells covering a fieldW x fieldH field.
func NewCanvas(cols, rows int, fieldW, fieldH float64) *Canvas {
	return &Canvas{
		back:   NewScreen(cols, rows),
		front:  NewScreen(cols, rows),
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// Resize changes the cell grid; the field keeps its size and is rescaled.
func (c *Canvas) Resize(cols, rows int) {
	c.back.Resize(cols, rows)
	c.front.Resize(cols, rows)
}

// Frame returns the last presented frame.
func (c *Canvas) Frame() *Screen {
	return c.front
}

// cellSize returns the field extent covered by one cell.
func (c *Canvas) cellSize() (float64, float64) {
	w, h := c.back.Width(), c.back.Height()
	if w == 0 || h == 0 {
		return 0, 0
	}
	return c.fieldW / float64(w), c.fieldH / float64(h)
}

// cellCenter returns the field coordinates of the centre of cell (x, y).
func (c *Canvas) cellCenter(x, y int) Vec {
	sx, sy := c.cellSize()
	return Vec{X: (float64(x) + 0.5) * sx, Y: (float64(y) + 0.5) * sy}
}

// cellAt returns the cell containing the field point p.
func (c *Canvas) cellAt(p Vec) (int, int) {
	sx, sy := c.cellSize()
	if sx == 0 || sy == 0 {
		return -1, -1
	}
	return int(math.Floor(p.X / sx)), int(math.Floor(p.Y / sy))
}

// paint writes a filled cell, or erases it when col is the background.
func (c *Canvas) paint(x, y int, col Color) {
	if col == c.bg {
		c.back.SetWithColor(x, y, ' ', col)
		return
	}
	c.back.SetWithColor(x, y, FillRune, col)
}

// cellRange converts a field bounding box into a clipped cell range.
func (c *Canvas) cellRange(minP, maxP Vec) (x0, y0, x1, y1 int) {
	x0, y0 = c.cellAt(minP)
	x1, y1 = c.cellAt(maxP)
	x0 = Clamp(x0, 0, c.back.Width()-1)
	y0 = Clamp(y0, 0, c.back.Height()-1)
	x1 = Clamp(x1, 0, c.back.Width()-1)
	y1 = Clamp(y1, 0, c.back.Height()-1)
	return x0, y0, x1, y1
}

// Clear fills the back buffer with the background colour.
func (c *Canvas) Clear(bg Color) {
	c.bg = bg
	c.back.FillCell(Cell{Rune: ' ', Color: bg})
}

// DrawCircle paints every cell whose centre is inside the circle.
// A circle that covers no cell centre still marks the cell holding its centre.
func (c *Canvas) DrawCircle(center Vec, radius float64, col Color) {
	if c.back.Width() == 0 || c.back.Height() == 0 {
		return
	}
	x0, y0, x1, y1 := c.cellRange(center.Sub(V(radius, radius)), center.Add(V(radius, radius)))
	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if Dist(c.cellCenter(x, y), center) <= radius {
				c.paint(x, y, col)
				painted = true
			}
		}
	}
	if !painted && col != c.bg {
		cx, cy := c.cellAt(center)
		c.back.SetWithColor(cx, cy, DotRune, col)
	}
}

// DrawPolygon paints every cell whose centre is inside the polygon.
func (c *Canvas) DrawPolygon(points []Vec, col Color) {
	if len(points) < 3 || c.back.Width() == 0 || c.back.Height() == 0 {
		return
	}
	minP, maxP := points[0], points[0]
	for _, p := range points[1:] {
		minP.X = math.Min(minP.X, p.X)
		minP.Y = math.Min(minP.Y, p.Y)
		maxP.X = math.Max(maxP.X, p.X)
		maxP.Y = math.Max(maxP.Y, p.Y)
	}
	x0, y0, x1, y1 := c.cellRange(minP, maxP)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if PointInPolygon(c.cellCenter(x, y), points) {
				c.paint(x, y, col)
			}
		}
	}
}

// DrawText writes text starting at the cell containing pos.
func (c *Canvas) DrawText(text string, pos Vec, col Color) {
	x, y := c.cellAt(pos)
	c.back.DrawTextWithColor(x, y, text, col)
}

// Present publishes the back buffer.
func (c *Canvas) Present() {
	c.front.CopyFrom(c.back)
}
