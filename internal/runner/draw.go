package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Align is the horizontal anchor of a text draw request.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Renderer is the drawing collaborator. Coordinates are simulation units;
// the implementation decides how they map to pixels or cells.
type Renderer interface {
	DrawRect(x, y, w, h float64, c core.Color)
	DrawText(text string, x, y float64, align Align, c core.Color, size int)
}

// Drawable is anything the render pass can draw.
type Drawable interface {
	Draw(r Renderer)
}

// Text is an on-screen label. Y is the text baseline.
type Text struct {
	Text  string
	X, Y  float64
	Align Align
	Color core.Color
	Size  int
}

// Draw implements Drawable.
func (t Text) Draw(r Renderer) {
	r.DrawText(t.Text, t.X, t.Y, t.Align, t.Color, t.Size)
}
