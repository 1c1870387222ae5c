package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/telemetry"
)

// placed is a point already occupied during level layout.
type placed struct {
	x, y    float64
	blocker bool
}

// InitLevel clears the world and lays out the level reported by the host:
// the player, spawners, food and debris.
func (w *World) InitLevel() {
	w.CleanUp()
	level := w.host.Level()

	px, py, heading := w.arena.PlayerStart()
	w.spawnPlayer(px, py, heading)

	var layout []placed
	spawners := w.difficulty.SpawnerCount(level)
	food := w.difficulty.FoodCount(level)
	debris := w.difficulty.DebrisCount(level)

	// Spawners only avoid each other
	for i := 0; i < spawners; i++ {
		x, y := w.placeInterior(components.KindSpawner, layout, false)
		w.spawnSpawner(x, y)
		layout = append(layout, placed{x: x, y: y})
	}

	for i := 0; i < food; i++ {
		x, y := w.placeInterior(components.KindFood, layout, false)
		w.spawnFood(x, y)
		layout = append(layout, placed{x: x, y: y})
	}

	// Debris may overlap other debris
	for i := 0; i < debris; i++ {
		x, y := w.placeInterior(components.KindDebris, layout, true)
		w.spawnDebris(x, y)
		layout = append(layout, placed{x: x, y: y, blocker: true})
	}

	w.rebuildBlockers()

	slog.Info("level_start",
		"level", level,
		"spawners", spawners,
		"food", food,
		"debris", debris,
	)
}

// placeInterior samples interior points until one overlaps nothing in layout.
// With skipBlockers, overlap with placed blockers is allowed. Sampling is
// capped; the last sample is kept when the cap is hit.
func (w *World) placeInterior(kind components.Kind, layout []placed, skipBlockers bool) (float64, float64) {
	attempts := w.cfg.Arena.PlacementAttempts
	var x, y float64
	for i := 0; i < attempts; i++ {
		x, y = w.arena.InteriorPoint(w.host)
		if !w.overlapsLayout(x, y, layout, skipBlockers) {
			return x, y
		}
	}
	slog.Warn("placement_capped", "kind", kind.String(), "attempts", attempts, "x", x, "y", y)
	return x, y
}

func (w *World) overlapsLayout(x, y float64, layout []placed, skipBlockers bool) bool {
	for _, p := range layout {
		if skipBlockers && p.blocker {
			continue
		}
		if w.overlaps(x, y, p.x, p.y) {
			return true
		}
	}
	return false
}

// CleanUp removes every entity, including the player.
func (w *World) CleanUp() {
	for _, e := range w.order {
		w.world.RemoveEntity(e)
	}
	w.order = w.order[:0]
	if w.hasPlayer {
		w.world.RemoveEntity(w.player)
		w.hasPlayer = false
	}
	w.organisms = 0
	w.spawners = 0
	w.blockers.Clear()
	w.blockersDirty = false
}

// Spawn helpers. Every non-player entity is appended to the tick order.

func (w *World) spawnPlayer(x, y, heading float64) ecs.Entity {
	pc := w.cfg.Player
	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{Heading: heading}
	actor := components.Actor{Kind: components.KindPlayer, Alive: true}
	health := components.Health{HP: pc.MaxHealth}
	player := components.Player{Sprays: pc.MaxSprays, Flames: pc.StartFlames, CanRecharge: true}

	w.player = w.playerMapper.NewEntity(&pos, &rot, &actor, &health, &player)
	w.hasPlayer = true
	return w.player
}

// spawnOrganism creates an organism of species s facing up with no wander plan.
func (w *World) spawnOrganism(s components.Species, x, y float64) ecs.Entity {
	sc := w.cfg.Organisms.Species.At(int(s))
	kind := s.Kind()
	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{Heading: 90}
	actor := components.Actor{Kind: kind, Alive: true}
	health := components.Health{HP: sc.Health}
	org := components.Organism{Damage: sc.Damage, Step: sc.Step}

	e := w.organismMapper.NewEntity(&pos, &rot, &actor, &health, &org)
	w.order = append(w.order, e)
	w.organisms++
	w.record(telemetry.NewBirthEvent(w.tick, kind))
	return e
}

func (w *World) spawnFood(x, y float64) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{Heading: 90}
	actor := components.Actor{Kind: components.KindFood, Alive: true}

	e := w.foodMapper.NewEntity(&pos, &rot, &actor, &components.Edible{})
	w.order = append(w.order, e)
	return e
}

func (w *World) spawnDebris(x, y float64) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{}
	actor := components.Actor{Kind: components.KindDebris, Alive: true}

	e := w.blockerMapper.NewEntity(&pos, &rot, &actor, &components.Blocker{})
	w.order = append(w.order, e)
	w.blockersDirty = true
	return e
}

func (w *World) spawnSpawner(x, y float64) ecs.Entity {
	q := w.cfg.Spawner.Quota
	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{}
	actor := components.Actor{Kind: components.KindSpawner, Alive: true}
	sp := components.Spawner{}
	sp.Remaining[components.SpeciesWanderer] = q.Wanderer
	sp.Remaining[components.SpeciesStalker] = q.Stalker
	sp.Remaining[components.SpeciesSeeker] = q.Seeker

	e := w.spawnerMapper.NewEntity(&pos, &rot, &actor, &sp)
	w.order = append(w.order, e)
	w.spawners++
	return e
}

// spawnPickup creates a pickup or hazard with a level-scaled lifetime.
func (w *World) spawnPickup(kind components.Kind, x, y float64) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{}
	actor := components.Actor{Kind: kind, Alive: true}
	pickup := components.Pickup{
		Remaining: w.difficulty.PickupLifetime(w.host, w.host.Level()),
		Score:     w.pickupScore(kind),
	}

	e := w.pickupMapper.NewEntity(&pos, &rot, &actor, &pickup)
	w.order = append(w.order, e)
	return e
}

func (w *World) pickupScore(kind components.Kind) int {
	pc := w.cfg.Pickups
	switch kind {
	case components.KindHealthPickup:
		return pc.HealthScore
	case components.KindFlamePickup:
		return pc.FlameScore
	case components.KindLifePickup:
		return pc.LifeScore
	case components.KindHazard:
		return pc.HazardScore
	}
	return 0
}

// spawnProjectile creates a flame or spray travelling along heading.
func (w *World) spawnProjectile(kind components.Kind, x, y, heading float64) ecs.Entity {
	pc := w.cfg.Projectiles.Spray
	if kind == components.KindFlame {
		pc = w.cfg.Projectiles.Flame
	}
	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{Heading: heading}
	actor := components.Actor{Kind: kind, Alive: true}
	proj := components.Projectile{
		Budget: pc.Budget,
		Step:   w.arena.SpriteWidth,
		Damage: pc.Damage,
	}

	e := w.projectileMapper.NewEntity(&pos, &rot, &actor, &proj)
	w.order = append(w.order, e)
	return e
}

// Death and damage.

// kill marks e dead and applies its kind's death effects. Repeated kills of
// the same entity are no-ops, so counters move exactly once.
func (w *World) kill(e ecs.Entity) {
	a := w.actorMap.Get(e)
	if !a.Alive {
		return
	}
	a.Alive = false
	kind := a.Kind

	switch {
	case kind.Is(components.CapOrganism):
		w.organismDied(e, kind)
	case kind == components.KindSpawner:
		w.spawners--
	case kind == components.KindDebris:
		w.blockersDirty = true
	}
}

// organismDied applies the fixed organism death effects: counter, score and
// a 50% food drop at the death location.
func (w *World) organismDied(e ecs.Entity, kind components.Kind) {
	w.organisms--
	w.host.AddScore(w.cfg.Organisms.KillScore)
	w.record(telemetry.NewDeathEvent(w.tick, kind))

	pos := *w.posMap.Get(e)
	if w.host.RandInt(0, 1) == 1 {
		w.spawnFood(pos.X, pos.Y)
	}
}

// damage hurts a live damageable entity. Health-bearing entities lose health
// and die at zero; any other damageable entity is destroyed outright.
// Negative amounts are ignored.
func (w *World) damage(e ecs.Entity, amount int) {
	if amount < 0 {
		return
	}
	a := w.actorMap.Get(e)
	if !a.Alive || !a.Kind.Is(components.CapDamageable) {
		return
	}
	if !a.Kind.Is(components.CapHealth) {
		w.kill(e)
		return
	}

	h := w.healthMap.Get(e)
	h.HP -= amount
	died := h.HP <= 0
	if hurt, dead, ok := damageSounds(a.Kind); ok {
		if died {
			w.host.PlaySound(dead)
		} else {
			w.host.PlaySound(hurt)
		}
	}
	if died {
		w.kill(e)
	}
}

// damagePlayer hurts the player on behalf of source.
func (w *World) damagePlayer(amount int, source components.Kind) {
	if amount < 0 || !w.playerAlive() {
		return
	}
	w.record(telemetry.NewPlayerHitEvent(w.tick, source, amount))
	w.damage(w.player, amount)
}

func damageSounds(kind components.Kind) (hurt, dead Sound, ok bool) {
	switch kind {
	case components.KindPlayer:
		return SoundPlayerHurt, SoundPlayerDied, true
	case components.KindWanderer:
		return SoundWandererHurt, SoundWandererDied, true
	case components.KindStalker:
		return SoundStalkerHurt, SoundStalkerDied, true
	case components.KindSeeker:
		return SoundSeekerHurt, SoundSeekerDied, true
	}
	return 0, 0, false
}

// purge removes every dead entity from the ark world and the tick order.
func (w *World) purge() {
	live := w.order[:0]
	for _, e := range w.order {
		if w.alive(e) {
			live = append(live, e)
			continue
		}
		w.world.RemoveEntity(e)
	}
	w.order = live

	if w.blockersDirty {
		w.rebuildBlockers()
	}
}

// rebuildBlockers re-indexes live blockers.
func (w *World) rebuildBlockers() {
	w.blockers.Clear()
	query := w.blockerFilter.Query()
	for query.Next() {
		pos, actor, _ := query.Get()
		if actor.Alive {
			w.blockers.Insert(query.Entity(), pos.X, pos.Y)
		}
	}
	w.blockersDirty = false
}
