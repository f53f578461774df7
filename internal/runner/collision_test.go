package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b core.RectF
		want bool
	}{
		{"separated on x", core.NewRectF(0, 0, 10, 10), core.NewRectF(20, 0, 10, 10), false},
		{"separated on y", core.NewRectF(0, 0, 10, 10), core.NewRectF(0, 20, 10, 10), false},
		{"partial overlap", core.NewRectF(0, 0, 10, 10), core.NewRectF(5, 5, 10, 10), true},
		{"edges touching", core.NewRectF(0, 0, 10, 10), core.NewRectF(10, 0, 10, 10), false},
		{"corner touching", core.NewRectF(0, 0, 10, 10), core.NewRectF(10, 10, 10, 10), false},
		{"identical", core.NewRectF(3, 3, 4, 4), core.NewRectF(3, 3, 4, 4), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Errorf("Overlaps(a, b) = %v, expected %v", got, tc.want)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.want {
				t.Errorf("Overlaps(b, a) = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestDuckingClearsFloatingObstacle(t *testing.T) {
	a := groundedAvatar()
	size := 40.0
	o := Obstacle{X: a.X, Y: testFloor - size - (a.OriginalHeight - 10), W: size, H: size, Kind: Floating}

	if !Overlaps(a.Rect(), o.Rect()) {
		t.Fatal("standing avatar should hit a floating obstacle")
	}

	a.H = a.OriginalHeight / 2
	a.Y = testFloor - a.H
	if Overlaps(a.Rect(), o.Rect()) {
		t.Error("ducked avatar should pass under a floating obstacle")
	}
}
