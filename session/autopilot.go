package session

import (
	"math/rand"

	"github.com/pthm-cable/petri/game"
)

// Autopilot is a headless input source. Each call idles with probability
// idle and otherwise presses a uniformly random key.
type Autopilot struct {
	rng  *rand.Rand
	idle float64
}

// NewAutopilot creates an autopilot with its own random stream.
func NewAutopilot(seed int64, idle float64) *Autopilot {
	return &Autopilot{
		rng:  rand.New(rand.NewSource(seed)),
		idle: min(max(idle, 0), 1),
	}
}

// PendingKey implements game.Input.
func (a *Autopilot) PendingKey() (game.Key, bool) {
	if a.rng.Float64() < a.idle {
		return 0, false
	}
	return game.Key(a.rng.Intn(int(game.NumKeys))), true
}
