package render

import (
	"strings"
	"testing"

	"github.com/san-kum/ventsim/internal/engine"
	"github.com/san-kum/ventsim/internal/mech"
	"github.com/san-kum/ventsim/internal/vent"
)

func TestSetPixelMapping(t *testing.T) {
	c := NewCanvas(2, 2)

	// Top-left dot of the first cell.
	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("cell = %#x, want 0x2801", c.Grid[0][0])
	}

	// Bottom-right dot of the same cell.
	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x80 {
		t.Errorf("cell = %#x, want both dots set", c.Grid[0][0])
	}

	// Second cell column starts at sub-pixel x=2.
	c.Set(2, 0)
	if c.Grid[0][1] != 0x2801 {
		t.Errorf("neighbor cell = %#x, want 0x2801", c.Grid[0][1])
	}
}

func TestSetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(4, 0)
	c.Set(0, 8)
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatal("out-of-bounds Set touched the grid")
			}
		}
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Line(0, 0, 5, 11)
	c.Clear()
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("Clear left lit cells behind")
	}
}

func TestLineHorizontal(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Line(0, 0, 7, 0)
	for col := 0; col < 4; col++ {
		if c.Grid[0][col]&0x9 != 0x9 {
			t.Errorf("column %d missing top-row dots: %#x", col, c.Grid[0][col])
		}
	}
}

func TestFitCentersWorld(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Fit(100, 100)

	// The world center must land at the sub-pixel center, give or take the
	// integer truncation.
	px, py := c.toPixel(50, 50)
	if px < 9 || px > 10 || py < 19 || py > 20 {
		t.Errorf("world center at (%d, %d), want near (10, 20)", px, py)
	}

	// Corners stay inside the sub-pixel grid.
	for _, p := range [][2]float64{{0, 0}, {100, 0}, {0, 100}, {100, 100}} {
		px, py := c.toPixel(p[0], p[1])
		if px < 0 || py < 0 || px >= 20 || py >= 40 {
			t.Errorf("world corner %v mapped outside the grid: (%d, %d)", p, px, py)
		}
	}
}

func TestFitIgnoresDegenerateWorld(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Fit(0, 100)
	c.WorldDot(1, 1) // must not panic or divide by zero
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(5, 3)
	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) != 5 {
			t.Errorf("line %q has %d cells, want 5", l, len([]rune(l)))
		}
	}
}

func TestDrawState(t *testing.T) {
	m, err := mech.New("linkage")
	if err != nil {
		t.Fatal(err)
	}
	eng := engine.New(m, vent.Params{
		FlapHeight:   125,
		MotorSpacing: 30,
		Extension:    50,
		ScanStepDeg:  0.5,
	})

	c := NewCanvas(60, 20)
	DrawState(c, eng.Snapshot())

	lit := 0
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("rendered scene is empty")
	}

	// Redrawing the same snapshot is stable.
	before := c.String()
	DrawState(c, eng.Snapshot())
	if c.String() != before {
		t.Error("redraw of an identical snapshot changed the canvas")
	}
}
