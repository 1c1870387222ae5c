package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/systems"
)

// Organism behaviors. Component pointers are re-read after any helper that
// may spawn, since an offspring shares the parent's archetype storage.

func (w *World) species(e ecs.Entity) (components.Species, config.SpeciesConfig) {
	s, _ := components.SpeciesOf(w.kindOf(e))
	return s, w.cfg.Organisms.Species.At(int(s))
}

// actWanderer: contact or feed, then hold a committed heading or graze toward
// the nearest food.
func (w *World) actWanderer(e ecs.Entity) {
	w.engage(e)
	w.graze(e)
}

// actStalker charges the player inside its activation radius and otherwise
// behaves as a wanderer.
func (w *World) actStalker(e ecs.Entity) {
	_, sc := w.species(e)
	if px, py, ok := w.playerWithin(e, sc.ActivationRadius); ok {
		w.face(e, px, py)
		w.tryStep(e)
		w.engage(e)
		return
	}
	w.actWanderer(e)
}

// actSeeker engages first, then pursues the player across its activation
// radius, turning after each blocked step.
func (w *World) actSeeker(e ecs.Entity) {
	w.engage(e)

	_, sc := w.species(e)
	px, py, ok := w.playerWithin(e, sc.ActivationRadius)
	if !ok {
		return
	}
	w.face(e, px, py)
	oc := w.cfg.Organisms
	for i := 0; i < oc.SeekerAttempts; i++ {
		if w.tryStep(e) {
			return
		}
		rot := w.rotMap.Get(e)
		rot.Heading = systems.NormalizeHeading(rot.Heading + oc.SeekerTurn)
	}
}

// engage damages the player on contact; without contact the organism feeds
// or reproduces instead.
func (w *World) engage(e ecs.Entity) {
	if w.overlapsPlayer(e) {
		w.damagePlayer(w.orgMap.Get(e).Damage, w.kindOf(e))
		return
	}
	w.feedOrReproduce(e)
}

// feedOrReproduce divides a fed organism, or eats one overlapping food.
func (w *World) feedOrReproduce(e ecs.Entity) {
	org := w.orgMap.Get(e)
	pos := *w.posMap.Get(e)

	if org.FoodEaten >= w.cfg.Organisms.FoodToDivide {
		org.FoodEaten = 0
		s, _ := w.species(e)
		x, y := w.arena.OffspringPoint(pos.X, pos.Y)
		w.spawnOrganism(s, x, y)
		return
	}

	if w.eatFoodAt(pos.X, pos.Y) {
		org.FoodEaten++
	}
}

// graze continues a committed wander, or heads for food within range, or
// picks a new random heading.
func (w *World) graze(e ecs.Entity) {
	org := w.orgMap.Get(e)
	if org.PlanTicks > 0 {
		org.PlanTicks--
		if !w.tryStep(e) {
			w.repick(e)
		}
		return
	}

	pos := w.posMap.Get(e)
	if fx, fy, ok := w.nearestFood(pos.X, pos.Y, w.cfg.Organisms.FoodSearchRadius); ok {
		w.face(e, fx, fy)
		if !w.tryStep(e) {
			w.repick(e)
		}
		return
	}
	w.repick(e)
}

// repick commits to a new uniformly random heading.
func (w *World) repick(e ecs.Entity) {
	w.rotMap.Get(e).Heading = float64(w.host.RandInt(0, 359))
	w.orgMap.Get(e).PlanTicks = w.cfg.Organisms.WanderCommitment
}

func (w *World) face(e ecs.Entity, x, y float64) {
	pos := w.posMap.Get(e)
	w.rotMap.Get(e).Heading = systems.DirectionTo(pos.X, pos.Y, x, y)
}

// tryStep moves e one step along its heading unless the destination leaves
// the arena or touches a blocker.
func (w *World) tryStep(e ecs.Entity) bool {
	pos := w.posMap.Get(e)
	heading := w.rotMap.Get(e).Heading
	x, y := systems.MoveAngle(pos.X, pos.Y, heading, w.orgMap.Get(e).Step)
	if !w.canMoveTo(x, y) {
		return false
	}
	pos.X, pos.Y = x, y
	return true
}
