package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Field is the bounded rectangle every entity lives in.
type Field struct {
	W, H float64
}

// ClampX keeps a circle of radius r horizontally inside the field.
func (f Field) ClampX(x, r float64) float64 {
	return core.ClampF(x, r, f.W-r)
}

// ClampY keeps a circle of radius r vertically inside the field.
func (f Field) ClampY(y, r float64) float64 {
	return core.ClampF(y, r, f.H-r)
}

// Clamp keeps a circle of radius r fully inside the field.
func (f Field) Clamp(p core.Vec, r float64) core.Vec {
	return core.V(f.ClampX(p.X, r), f.ClampY(p.Y, r))
}

// Contains reports whether a circle of radius r lies fully inside the field.
func (f Field) Contains(p core.Vec, r float64) bool {
	return p.X >= r && p.X <= f.W-r && p.Y >= r && p.Y <= f.H-r
}

// RandomPosition draws a centre uniformly from [r, dim-r] on each axis.
func (f Field) RandomPosition(rng *rand.Rand, r float64) core.Vec {
	return core.V(
		r+rng.Float64()*(f.W-2*r),
		r+rng.Float64()*(f.H-2*r),
	)
}

// Center returns the middle of the field.
func (f Field) Center() core.Vec {
	return core.V(f.W/2, f.H/2)
}
