package core

// EventSource yields the events queued since the previous tick.
type EventSource interface {
	PollEvents() []Event
}

// KeySource reports which directional keys are currently held.
type KeySource interface {
	KeyState() KeyState
}

// Renderer is the primitive drawing surface a game renders into.
// Coordinates are field coordinates; backends scale them to their surface.
type Renderer interface {
	Clear(bg Color)
	DrawCircle(center Vec, radius float64, c Color)
	DrawPolygon(points []Vec, c Color)
	DrawText(text string, pos Vec, c Color)
	// Present publishes the frame drawn since the last Clear.
	Present()
}

// Pacer blocks until the next tick boundary for the given rate.
type Pacer interface {
	SleepToRate(hz int)
}

// Backend is everything a game loop needs from a platform.
type Backend interface {
	EventSource
	KeySource
	Renderer
	Pacer
}

// LoopSignal tells the outer driver whether to keep ticking.
type LoopSignal int

const (
	Continue LoopSignal = iota
	Ended
)

// String returns a human-readable name for the signal.
func (s LoopSignal) String() string {
	if s == Ended {
		return "Ended"
	}
	return "Continue"
}
