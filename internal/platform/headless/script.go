// Package headless runs the game without a display. Frames are rasterised
// into a character buffer and input comes from a key script.
package headless

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ErrInvalidScript is wrapped by every script parse failure.
var ErrInvalidScript = errors.New("invalid key script")

// Step holds a key combination for a number of ticks.
type Step struct {
	Keys  []core.Key
	Ticks int
}

// Script is a looping sequence of key steps.
type Script struct {
	steps []Step
	total int
}

var scriptKeys = map[rune]core.Key{
	'L': core.KeyLeft,
	'R': core.KeyRight,
	'U': core.KeyUp,
	'D': core.KeyDown,
}

// ParseScript parses a comma-separated script such as "R30,DL15,.10".
// Each step is a set of keys (L R U D, or . for none) followed by a
// tick count. The script repeats once it runs out.
// An empty script holds nothing.
func ParseScript(s string) (Script, error) {
	var sc Script
	s = strings.TrimSpace(s)
	if s == "" {
		return sc, nil
	}

	for i, part := range strings.Split(s, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		split := strings.IndexFunc(part, func(r rune) bool { return r >= '0' && r <= '9' })
		if split <= 0 {
			return Script{}, fmt.Errorf("%w: step %d %q: want keys followed by a tick count", ErrInvalidScript, i+1, part)
		}

		ticks, err := strconv.Atoi(part[split:])
		if err != nil || ticks <= 0 {
			return Script{}, fmt.Errorf("%w: step %d %q: bad tick count", ErrInvalidScript, i+1, part)
		}

		step := Step{Ticks: ticks}
		for _, r := range part[:split] {
			if r == '.' {
				continue
			}
			k, ok := scriptKeys[r]
			if !ok {
				return Script{}, fmt.Errorf("%w: step %d %q: unknown key %q", ErrInvalidScript, i+1, part, r)
			}
			step.Keys = append(step.Keys, k)
		}

		sc.steps = append(sc.steps, step)
		sc.total += ticks
	}
	return sc, nil
}

// Steps returns the parsed steps.
func (sc Script) Steps() []Step {
	return sc.steps
}

// KeysAt returns the keys held on the given zero-based tick.
func (sc Script) KeysAt(tick int) core.KeyState {
	if sc.total == 0 {
		return core.NewKeyState()
	}
	t := tick % sc.total
	for _, st := range sc.steps {
		if t < st.Ticks {
			return core.Keys(st.Keys...)
		}
		t -= st.Ticks
	}
	return core.NewKeyState()
}
