package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
)

// behavior runs one entity's action for the current tick.
type behavior func(w *World, e ecs.Entity)

// behaviorTable maps each kind to its strategy. Kinds without an entry are
// passive (blockers, food).
func behaviorTable() [components.NumKinds]behavior {
	var t [components.NumKinds]behavior
	t[components.KindPlayer] = (*World).actPlayer
	t[components.KindWanderer] = (*World).actWanderer
	t[components.KindStalker] = (*World).actStalker
	t[components.KindSeeker] = (*World).actSeeker
	t[components.KindHealthPickup] = (*World).actPickup
	t[components.KindFlamePickup] = (*World).actPickup
	t[components.KindLifePickup] = (*World).actPickup
	t[components.KindHazard] = (*World).actPickup
	t[components.KindFlame] = (*World).actProjectile
	t[components.KindSpray] = (*World).actProjectile
	t[components.KindSpawner] = (*World).actSpawner
	return t
}

// act runs e's behavior. Dead entities do nothing.
func (w *World) act(e ecs.Entity) {
	a := w.actorMap.Get(e)
	if !a.Alive {
		return
	}
	if b := w.behaviors[a.Kind]; b != nil {
		w.acted++
		b(w, e)
	}
}

// alive reports whether e is live this tick.
func (w *World) alive(e ecs.Entity) bool {
	return w.actorMap.Get(e).Alive
}

func (w *World) kindOf(e ecs.Entity) components.Kind {
	return w.actorMap.Get(e).Kind
}
