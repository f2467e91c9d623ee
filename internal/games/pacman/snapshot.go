package pacman

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Reason  EndReason
	Score   int
	PlayerX float64
	PlayerY float64
	Facing  Direction
	Mouth   float64
	Pellets []PointSnapshot
	Ghosts  []GhostSnapshot
}

// PointSnapshot is a captured entity position.
type PointSnapshot struct {
	X, Y float64
}

// GhostSnapshot is a captured ghost position and heading.
type GhostSnapshot struct {
	X, Y float64
	Dir  Direction
}

// Snapshot returns the current game snapshot for determinism verification.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.Tick,
		Phase:   s.Phase,
		Reason:  s.Reason,
		Score:   s.Score.Value(),
		PlayerX: s.Player.Pos.X,
		PlayerY: s.Player.Pos.Y,
		Facing:  s.Player.Facing,
		Mouth:   s.Player.MouthAngle,
		Pellets: make([]PointSnapshot, len(s.Pellets)),
		Ghosts:  make([]GhostSnapshot, len(s.Ghosts)),
	}
	for i, p := range s.Pellets {
		snap.Pellets[i] = PointSnapshot{X: p.Pos.X, Y: p.Pos.Y}
	}
	for i, g := range s.Ghosts {
		snap.Ghosts[i] = GhostSnapshot{X: g.Pos.X, Y: g.Pos.Y, Dir: g.Dir}
	}
	return snap
}
