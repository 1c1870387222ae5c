package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/systems"
)

// overlaps applies the shared sprite overlap rule.
func (w *World) overlaps(x1, y1, x2, y2 float64) bool {
	return systems.Overlaps(x1, y1, x2, y2, w.arena.SpriteWidth)
}

func (w *World) playerAlive() bool {
	return w.hasPlayer && w.alive(w.player)
}

// overlapsPlayer reports whether e overlaps the live player.
func (w *World) overlapsPlayer(e ecs.Entity) bool {
	if !w.playerAlive() {
		return false
	}
	pos := w.posMap.Get(e)
	pp := w.posMap.Get(w.player)
	return w.overlaps(pos.X, pos.Y, pp.X, pp.Y)
}

// playerWithin returns the player's position if it is within radius of e.
func (w *World) playerWithin(e ecs.Entity, radius float64) (x, y float64, ok bool) {
	if !w.playerAlive() {
		return 0, 0, false
	}
	pos := w.posMap.Get(e)
	pp := w.posMap.Get(w.player)
	if systems.Distance(pos.X, pos.Y, pp.X, pp.Y) > radius {
		return 0, 0, false
	}
	return pp.X, pp.Y, true
}

// nearestFood returns the closest live food within radius of (x, y).
// Foods are scanned in tick order; on equal distance the earlier one wins.
func (w *World) nearestFood(x, y, radius float64) (fx, fy float64, ok bool) {
	best := radius
	for _, e := range w.order {
		a := w.actorMap.Get(e)
		if !a.Alive || a.Kind != components.KindFood {
			continue
		}
		pos := w.posMap.Get(e)
		d := systems.Distance(x, y, pos.X, pos.Y)
		if d > radius {
			continue
		}
		if !ok || d < best {
			best = d
			fx, fy, ok = pos.X, pos.Y, true
		}
	}
	return fx, fy, ok
}

// eatFoodAt kills the earliest queued live food overlapping (x, y).
func (w *World) eatFoodAt(x, y float64) bool {
	for _, e := range w.order {
		a := w.actorMap.Get(e)
		if !a.Alive || a.Kind != components.KindFood {
			continue
		}
		pos := w.posMap.Get(e)
		if w.overlaps(x, y, pos.X, pos.Y) {
			w.kill(e)
			return true
		}
	}
	return false
}

// blocked reports whether (x, y) lies within half a sprite width of a live blocker.
func (w *World) blocked(x, y float64) bool {
	if w.blockersDirty {
		w.rebuildBlockers()
	}
	return w.blockers.AnyWithin(x, y, w.arena.HalfSprite(), w.posMap, w.alive)
}

// canMoveTo reports whether an organism may step onto (x, y).
func (w *World) canMoveTo(x, y float64) bool {
	return w.arena.Contains(x, y) && !w.blocked(x, y)
}

// levelCleared reports whether no organisms or spawners remain.
func (w *World) levelCleared() bool {
	return w.organisms == 0 && w.spawners == 0
}

// EntityView is a read-only snapshot of one live entity.
type EntityView struct {
	Kind    components.Kind
	X, Y    float64
	Heading float64
}

// Visit calls fn for every live entity in tick order, player first.
func (w *World) Visit(fn func(EntityView)) {
	if w.playerAlive() {
		fn(w.view(w.player))
	}
	for _, e := range w.order {
		if w.alive(e) {
			fn(w.view(e))
		}
	}
}

func (w *World) view(e ecs.Entity) EntityView {
	pos := w.posMap.Get(e)
	return EntityView{
		Kind:    w.kindOf(e),
		X:       pos.X,
		Y:       pos.Y,
		Heading: w.rotMap.Get(e).Heading,
	}
}

// Census holds live entity counts by kind plus the engine's level counters.
type Census struct {
	ByKind    [components.NumKinds]int
	Organisms int
	Spawners  int
}

// Census counts live entities.
func (w *World) Census() Census {
	c := Census{Organisms: w.organisms, Spawners: w.spawners}
	w.Visit(func(v EntityView) {
		c.ByKind[v.Kind]++
	})
	return c
}

// PlayerStats is the player's status snapshot.
type PlayerStats struct {
	Alive   bool
	Health  int
	Sprays  int
	Flames  int
	X, Y    float64
	Heading float64
}

// PlayerStats returns the player's current state. The zero value is returned
// before the first level is initialized.
func (w *World) PlayerStats() PlayerStats {
	if !w.hasPlayer {
		return PlayerStats{}
	}
	pl := w.playerMap.Get(w.player)
	pos := w.posMap.Get(w.player)
	return PlayerStats{
		Alive:   w.alive(w.player),
		Health:  w.healthMap.Get(w.player).HP,
		Sprays:  pl.Sprays,
		Flames:  pl.Flames,
		X:       pos.X,
		Y:       pos.Y,
		Heading: w.rotMap.Get(w.player).Heading,
	}
}

// Organisms returns the live organism counter.
func (w *World) Organisms() int { return w.organisms }

// Spawners returns the live spawner counter.
func (w *World) Spawners() int { return w.spawners }
