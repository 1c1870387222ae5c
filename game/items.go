package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/systems"
	"github.com/pthm-cable/petri/telemetry"
)

// actPickup applies the pickup's effect when it touches the player, otherwise
// counts down its lifetime and expires silently.
func (w *World) actPickup(e ecs.Entity) {
	p := w.pickupMap.Get(e)

	if w.overlapsPlayer(e) {
		kind := w.kindOf(e)
		score := p.Score
		w.collect(kind, score)
		w.kill(e)
		return
	}

	p.Remaining--
	if p.Remaining <= 0 {
		w.kill(e)
	}
}

// collect applies a pickup effect and its signed score.
func (w *World) collect(kind components.Kind, score int) {
	pc := w.cfg.Pickups
	w.record(telemetry.NewPickupEvent(w.tick, kind))
	w.host.AddScore(score)

	switch kind {
	case components.KindHealthPickup:
		w.host.PlaySound(SoundPickupCollected)
		w.healPlayer()
	case components.KindFlamePickup:
		w.host.PlaySound(SoundPickupCollected)
		w.rechargeFlames(pc.FlameRecharge)
	case components.KindLifePickup:
		w.host.PlaySound(SoundPickupCollected)
		w.host.IncLives()
	case components.KindHazard:
		w.damagePlayer(pc.HazardDamage, kind)
	}
}

// actProjectile hits the first overlapping target, or advances one step and
// expires once its travel reaches the budget.
func (w *World) actProjectile(e ecs.Entity) {
	if w.projectileHit(e) {
		w.kill(e)
		return
	}

	p := w.projectileMap.Get(e)
	pos := w.posMap.Get(e)
	heading := w.rotMap.Get(e).Heading
	pos.X, pos.Y = systems.MoveAngle(pos.X, pos.Y, heading, p.Step)
	p.Traveled += p.Step
	if p.Traveled >= p.Budget {
		w.kill(e)
	}
}

// projectileHit damages the first live damageable entity in tick order that
// overlaps projectile e. The player is not a target.
func (w *World) projectileHit(e ecs.Entity) bool {
	pos := *w.posMap.Get(e)
	damage := w.projectileMap.Get(e).Damage

	for _, t := range w.order {
		if t == e {
			continue
		}
		a := w.actorMap.Get(t)
		if !a.Alive || !a.Kind.Is(components.CapDamageable) {
			continue
		}
		tp := w.posMap.Get(t)
		if !w.overlaps(pos.X, pos.Y, tp.X, tp.Y) {
			continue
		}
		w.damage(t, damage)
		return true
	}
	return false
}

// actSpawner self-destructs once empty, otherwise occasionally emits one
// organism of a species it still holds.
func (w *World) actSpawner(e ecs.Entity) {
	sp := w.spawnerMap.Get(e)
	if sp.Empty() {
		w.kill(e)
		return
	}

	if w.host.RandInt(1, w.cfg.Spawner.EmitChance) != 1 {
		return
	}
	s, ok := systems.ChooseSpecies(w.host, sp.Remaining)
	if !ok {
		return
	}
	sp.Remaining[s]--

	pos := *w.posMap.Get(e)
	w.spawnOrganism(s, pos.X, pos.Y)
	w.host.PlaySound(SoundOrganismBorn)
}
