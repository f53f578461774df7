package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Overlaps reports whether two boxes intersect. Shared edges do not count.
func Overlaps(a, b core.RectF) bool {
	return a.Intersects(b)
}
