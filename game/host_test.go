package game

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/config"
)

// fakeHost is a scripted host. Queued rolls are returned first; after that
// RandInt returns hi, which never triggers a 1-in-N environment spawn or a
// spawner emission.
type fakeHost struct {
	keys  []Key
	rolls []int
	calls int // RandInt calls

	score, lives, level int
	status              string
	sounds              []Sound
}

func newFakeHost() *fakeHost {
	return &fakeHost{lives: 3, level: 1}
}

func (h *fakeHost) PendingKey() (Key, bool) {
	if len(h.keys) == 0 {
		return 0, false
	}
	k := h.keys[0]
	h.keys = h.keys[1:]
	return k, true
}

func (h *fakeHost) RandInt(lo, hi int) int {
	h.calls++
	if len(h.rolls) > 0 {
		r := h.rolls[0]
		h.rolls = h.rolls[1:]
		return r
	}
	return hi
}

func (h *fakeHost) AddScore(delta int)    { h.score += delta }
func (h *fakeHost) Score() int            { return h.score }
func (h *fakeHost) Lives() int            { return h.lives }
func (h *fakeHost) IncLives()             { h.lives++ }
func (h *fakeHost) DecLives()             { h.lives-- }
func (h *fakeHost) Level() int            { return h.level }
func (h *fakeHost) SetStatus(text string) { h.status = text }
func (h *fakeHost) PlaySound(s Sound)     { h.sounds = append(h.sounds, s) }

func (h *fakeHost) count(s Sound) int {
	n := 0
	for _, got := range h.sounds {
		if got == s {
			n++
		}
	}
	return n
}

// newTestWorld returns a world holding only the player at its start point.
func newTestWorld(t *testing.T) (*World, *fakeHost) {
	t.Helper()
	host := newFakeHost()
	w := NewWorld(config.Default(), host)
	x, y, heading := w.arena.PlayerStart()
	w.spawnPlayer(x, y, heading)
	return w, host
}

func (w *World) pos(e ecs.Entity) components.Position {
	return *w.posMap.Get(e)
}

func (w *World) entitiesOf(kind components.Kind) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range w.order {
		if w.alive(e) && w.kindOf(e) == kind {
			out = append(out, e)
		}
	}
	return out
}
