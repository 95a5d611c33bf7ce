// Package export turns system snapshots into SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ventsim/internal/geom"
	"github.com/san-kum/ventsim/internal/render"
	"github.com/san-kum/ventsim/internal/vent"
)

// StateToSVG renders a full mechanism snapshot as a standalone SVG. All
// coordinates come straight from the snapshot; scale only changes the
// document size.
func StateToSVG(s vent.SystemState, scale float64) string {
	if scale <= 0 {
		scale = 2
	}
	w := s.Layout.Width * scale
	h := s.Layout.Height * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.1f %.1f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g transform="scale(%.2f)" stroke-width="1" fill="none">
`, w, h, w, h, scale))

	// Fixed parts.
	writeRect(&sb, geom.Rect(0, 0, vent.FrameThickness, s.Layout.Height), "#555555")
	writeRect(&sb, geom.Rect(vent.FrameThickness, 0, s.Layout.InsRight, s.Layout.FlapTop), "#8a6d3b")
	writeRect(&sb, geom.Rect(vent.FrameThickness, s.Layout.FlapBottom, s.Layout.InsRight, s.Layout.Height), "#8a6d3b")
	writePolygon(&sb, s.Static.BottomQuad, "#8a6d3b")

	// Moving parts at the current angle.
	writePolygon(&sb, s.Dynamic.Flap, "#4da6ff")
	writePolygon(&sb, s.Dynamic.Housing, "#999999")
	writePolygon(&sb, s.Dynamic.Rod, "#cccccc")
	if s.Static.BracketLen > 0 {
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#cccccc"/>
`, s.Dynamic.Mount.X, s.Dynamic.Mount.Y, s.Dynamic.Nut.X, s.Dynamic.Nut.Y))
	}

	nut := s.Dynamic.Nut
	writeRect(&sb, geom.Rect(nut.X-vent.NutWidth/2, nut.Y-vent.NutHeight/2, nut.X+vent.NutWidth/2, nut.Y+vent.NutHeight/2), "#ffd24d")
	sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="2" fill="#ff4d4d" stroke="none"/>
`, s.Static.Pivot.X, s.Static.Pivot.Y))

	sb.WriteString(fmt.Sprintf(`<text x="4" y="%.1f" font-size="8" fill="#dddddd" stroke="none">%s  open %.1f / max %.1f deg</text>
`, s.Layout.Height-4, s.Variant, -s.CurrentAngleDeg, -s.MaxAngleDeg))

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func writePolygon(sb *strings.Builder, p geom.Polygon, stroke string) {
	if len(p) < 3 {
		return
	}
	sb.WriteString(`<polygon points="`)
	for i, v := range p {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.2f,%.2f", v.X, v.Y))
	}
	sb.WriteString(fmt.Sprintf(`" stroke="%s"/>
`, stroke))
}

func writeRect(sb *strings.Builder, r geom.Polygon, stroke string) {
	writePolygon(sb, r, stroke)
}

// CanvasToSVG converts a braille canvas to SVG dots, for exporting exactly
// what the terminal view shows.
func CanvasToSVG(canvas *render.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
