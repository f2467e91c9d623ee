package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ScoreTracker accumulates points. It only ever goes up.
type ScoreTracker struct {
	value int
}

// Award adds points to the total. Non-positive awards are ignored.
func (s *ScoreTracker) Award(points int) {
	if points <= 0 {
		return
	}
	s.value += points
}

// Value returns the current total.
func (s *ScoreTracker) Value() int {
	return s.value
}

// Text returns the HUD line for the score.
func (s *ScoreTracker) Text() string {
	return fmt.Sprintf("Score: %d", s.value)
}

// Render draws the score at a fixed position.
func (s *ScoreTracker) Render(r core.Renderer, pos core.Vec, c core.Color) {
	r.DrawText(s.Text(), pos, c)
}
