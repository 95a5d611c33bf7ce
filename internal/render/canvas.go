package render

import "strings"

// Braille patterns, 2x4 dots per cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille sub-pixel drawing surface with a world-to-pixel
// transform, so scene code can draw in mechanism millimeters directly. The
// sub-pixel resolution is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune

	scale      float64
	offX, offY float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		scale:  1,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Fit sets the world transform so a worldW x worldH region (plus a small
// margin) fills the canvas.
func (c *Canvas) Fit(worldW, worldH float64) {
	if worldW <= 0 || worldH <= 0 {
		return
	}
	sx := float64(c.Width*2) / (worldW * 1.05)
	sy := float64(c.Height*4) / (worldH * 1.05)
	c.scale = sx
	if sy < sx {
		c.scale = sy
	}
	c.offX = (float64(c.Width*2) - worldW*c.scale) / 2
	c.offY = (float64(c.Height*4) - worldH*c.scale) / 2
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(x*c.scale + c.offX), int(y*c.scale + c.offY)
}

// Set lights the sub-pixel at raw coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// Line draws a sub-pixel line with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// WorldLine draws a line between two world-coordinate points.
func (c *Canvas) WorldLine(x0, y0, x1, y1 float64) {
	px0, py0 := c.toPixel(x0, y0)
	px1, py1 := c.toPixel(x1, y1)
	c.Line(px0, py0, px1, py1)
}

// WorldDot marks a single world-coordinate point.
func (c *Canvas) WorldDot(x, y float64) {
	px, py := c.toPixel(x, y)
	c.Set(px, py)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
