package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	GroundChar = '═'
)

// ScreenRenderer draws simulation units onto a terminal screen buffer.
// The playfield fills every row but the last, which holds the ground line.
// Text size has no meaning in a terminal and is ignored.
type ScreenRenderer struct {
	dst     *core.Screen
	surface Surface
	scaleX  float64
	scaleY  float64
}

// NewScreenRenderer creates a renderer that scales surface to dst.
func NewScreenRenderer(dst *core.Screen, surface Surface) *ScreenRenderer {
	rows := core.Max(dst.Height()-1, 0)
	return &ScreenRenderer{
		dst:     dst,
		surface: surface,
		scaleX:  float64(dst.Width()) / surface.Width,
		scaleY:  float64(rows) / surface.Height,
	}
}

// GroundRow returns the screen row of the ground line.
func (r *ScreenRenderer) GroundRow() int {
	return r.dst.Height() - 1
}

// DrawRect implements Renderer. Boxes cover every cell they touch and never
// shrink below one cell.
func (r *ScreenRenderer) DrawRect(x, y, w, h float64, c core.Color) {
	x0 := int(math.Floor(x * r.scaleX))
	x1 := int(math.Ceil((x + w) * r.scaleX))
	y0 := int(math.Floor(y * r.scaleY))
	y1 := int(math.Ceil((y + h) * r.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	// Keep boxes resting on the floor off the ground line.
	if y1 > r.GroundRow() {
		y1 = r.GroundRow()
		if y0 >= y1 {
			y0 = y1 - 1
		}
	}
	r.dst.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), BlockChar, c)
}

// DrawText implements Renderer. y is the baseline, so text sits on the row above it.
func (r *ScreenRenderer) DrawText(text string, x, y float64, align Align, c core.Color, _ int) {
	col := int(math.Round(x * r.scaleX))
	row := core.Max(int(math.Ceil(y*r.scaleY))-1, 0)
	n := len([]rune(text))

	switch align {
	case AlignRight:
		col -= n
	case AlignCenter:
		col -= n / 2
	}
	r.dst.DrawTextColored(col, row, text, c)
}

// DrawGround draws the ground line across the bottom row.
func (r *ScreenRenderer) DrawGround(c core.Color) {
	r.dst.DrawHLine(0, r.GroundRow(), r.dst.Width(), GroundChar, c)
}
