package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Direction is a cardinal movement or facing direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every direction, in the order random rolls index into.
var Directions = [...]Direction{DirRight, DirDown, DirLeft, DirUp}

// baseAngles maps a direction to the screen angle (degrees, clockwise
// because Y grows downwards) the mouth opens towards.
var baseAngles = map[Direction]float64{
	DirRight: 0,
	DirDown:  90,
	DirLeft:  180,
	DirUp:    270,
}

// BaseAngle returns the facing angle in degrees.
func (d Direction) BaseAngle() float64 {
	return baseAngles[d]
}

// Delta returns the unit step for the direction.
func (d Direction) Delta() core.Vec {
	switch d {
	case DirRight:
		return core.V(1, 0)
	case DirDown:
		return core.V(0, 1)
	case DirLeft:
		return core.V(-1, 0)
	case DirUp:
		return core.V(0, -1)
	default:
		return core.V(0, 0)
	}
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}
