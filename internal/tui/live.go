package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/ventsim/internal/render"
	"github.com/san-kum/ventsim/internal/vent"
)

const (
	liveWidth   = 72
	liveHeight  = 22
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints mechanism snapshots to a plain ANSI terminal at a
// capped frame rate, for the non-interactive `live` command.
type LiveRenderer struct {
	frameRate int
	lastFrame time.Time
	canvas    *render.Canvas
}

func NewLiveRenderer(frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{
		frameRate: frameRate,
		canvas:    render.NewCanvas(liveWidth, liveHeight),
	}
}

// Frame renders one snapshot, skipping frames that arrive faster than the
// configured rate.
func (r *LiveRenderer) Frame(s vent.SystemState) {
	if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	render.DrawState(r.canvas, s)

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  ext=%.0f%%  open=%.1f°  max=%.1f°\n",
		s.Variant, s.Extension, -s.CurrentAngleDeg, -s.MaxAngleDeg))
	b.WriteString("  " + strings.Repeat("-", liveWidth) + "\n")
	for _, row := range r.canvas.Grid {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString("  " + strings.Repeat("-", liveWidth) + "\n")
	b.WriteString(fmt.Sprintf("  nut=(%.1f, %.1f)  travel=%.1fmm  body=%.3frad\n",
		s.Dynamic.Nut.X, s.Dynamic.Nut.Y, s.Dynamic.Travel, s.Dynamic.BodyAngle))
	fmt.Print(b.String())
}

func (r *LiveRenderer) Start() { fmt.Print(hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Print(showCursor) }
