package core

// Key is a directional key the games react to.
// Physical bindings (arrows, WASD) are resolved by the platform layer.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// KeyState is the instantaneous press state of the directional keys for one tick.
// Keys are independent: any combination may be held at once.
type KeyState struct {
	Keys map[Key]bool
}

// NewKeyState creates a key state with nothing pressed.
func NewKeyState() KeyState {
	return KeyState{
		Keys: make(map[Key]bool),
	}
}

// Keys builds a key state with the given keys pressed.
func Keys(pressed ...Key) KeyState {
	ks := NewKeyState()
	for _, k := range pressed {
		ks.Set(k)
	}
	return ks
}

// Set marks a key as held.
func (s *KeyState) Set(k Key) {
	if s.Keys == nil {
		s.Keys = make(map[Key]bool)
	}
	s.Keys[k] = true
}

// Pressed returns true if the key is held.
func (s KeyState) Pressed(k Key) bool {
	if s.Keys == nil {
		return false
	}
	return s.Keys[k]
}

// Any returns true if at least one key is held.
func (s KeyState) Any() bool {
	for _, held := range s.Keys {
		if held {
			return true
		}
	}
	return false
}

// Event is a discrete notification drained from a backend once per tick.
type Event int

const (
	EventNone Event = iota
	// EventQuit asks the loop to end (window closed, q, ctrl+c).
	EventQuit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventQuit:
		return "Quit"
	default:
		return "None"
	}
}

// HasQuit reports whether the drained events contain a quit request.
func HasQuit(events []Event) bool {
	for _, e := range events {
		if e == EventQuit {
			return true
		}
	}
	return false
}
