package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/petri/components"
)

func TestPickupExpires(t *testing.T) {
	w, host := newTestWorld(t)
	host.rolls = []int{0} // lifetime draw below the minimum
	e := w.spawnPickup(components.KindHealthPickup, 256, 128)

	if got := w.pickupMap.Get(e).Remaining; got != 50 {
		t.Fatalf("lifetime = %d, want 50", got)
	}
	for i := 0; i < 49; i++ {
		w.act(e)
	}
	if !w.alive(e) {
		t.Fatal("pickup expired early")
	}
	w.act(e)
	if w.alive(e) {
		t.Error("pickup should expire on its 50th act")
	}
	if host.score != 0 || len(host.sounds) != 0 {
		t.Errorf("expiry had effects: score %d sounds %v", host.score, host.sounds)
	}
}

func TestPickupLifetimeScalesWithLevel(t *testing.T) {
	w, host := newTestWorld(t)
	host.level = 5

	e := w.spawnPickup(components.KindFlamePickup, 256, 128)

	if got := w.pickupMap.Get(e).Remaining; got != 249 {
		t.Errorf("lifetime = %d, want 249", got)
	}
}

func TestPickupEffects(t *testing.T) {
	tests := []struct {
		name       string
		kind       components.Kind
		wantScore  int
		wantHealth int
		wantFlames int
		wantLives  int
		wantSound  Sound
	}{
		{"health", components.KindHealthPickup, 250, 100, 5, 3, SoundPickupCollected},
		{"flame", components.KindFlamePickup, 300, 70, 10, 3, SoundPickupCollected},
		{"life", components.KindLifePickup, 500, 70, 5, 4, SoundPickupCollected},
		{"hazard", components.KindHazard, -50, 50, 5, 3, SoundPlayerHurt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, host := newTestWorld(t)
			w.healthMap.Get(w.player).HP = 70
			e := w.spawnPickup(tt.kind, 4, 128)

			w.act(e)

			if w.alive(e) {
				t.Error("collected pickup should die")
			}
			ps := w.PlayerStats()
			if host.score != tt.wantScore {
				t.Errorf("score = %d, want %d", host.score, tt.wantScore)
			}
			if ps.Health != tt.wantHealth {
				t.Errorf("health = %d, want %d", ps.Health, tt.wantHealth)
			}
			if ps.Flames != tt.wantFlames {
				t.Errorf("flames = %d, want %d", ps.Flames, tt.wantFlames)
			}
			if host.lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", host.lives, tt.wantLives)
			}
			if len(host.sounds) != 1 || host.sounds[0] != tt.wantSound {
				t.Errorf("sounds = %v, want [%v]", host.sounds, tt.wantSound)
			}
		})
	}
}

func TestProjectileBudget(t *testing.T) {
	tests := []struct {
		name     string
		kind     components.Kind
		wantActs int
	}{
		{"spray", components.KindSpray, 14},
		{"flame", components.KindFlame, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			e := w.spawnProjectile(tt.kind, 8, 128, 0)

			acts := 0
			for w.alive(e) && acts < 100 {
				w.act(e)
				acts++
			}

			if acts != tt.wantActs {
				t.Errorf("died after %d acts, want %d", acts, tt.wantActs)
			}
			p := w.pos(e)
			if want := 8 + 8*float64(tt.wantActs); math.Abs(p.X-want) > 1e-9 {
				t.Errorf("x = %v, want %v", p.X, want)
			}
		})
	}
}

func TestProjectileHitsFirstInTickOrder(t *testing.T) {
	w, host := newTestWorld(t)
	first := w.spawnOrganism(components.SpeciesWanderer, 100, 100)
	second := w.spawnOrganism(components.SpeciesStalker, 101, 100)
	spray := w.spawnProjectile(components.KindSpray, 100, 102, 0)

	w.act(spray)

	if w.alive(spray) {
		t.Error("projectile should die on hit")
	}
	if p := w.pos(spray); p.X != 100 || p.Y != 102 {
		t.Errorf("hitting projectile moved to (%v, %v)", p.X, p.Y)
	}
	if got := w.healthMap.Get(first).HP; got != 2 {
		t.Errorf("first target hp = %d, want 2", got)
	}
	if got := w.healthMap.Get(second).HP; got != 10 {
		t.Errorf("second target hp = %d, want 10", got)
	}
	if host.count(SoundWandererHurt) != 1 {
		t.Error("expected wanderer hurt sound")
	}
}

func TestProjectileDestroysDebrisAndPickups(t *testing.T) {
	w, _ := newTestWorld(t)
	debris := w.spawnDebris(100, 100)
	hazard := w.spawnPickup(components.KindHazard, 140, 100)
	a := w.spawnProjectile(components.KindFlame, 100, 100, 0)
	b := w.spawnProjectile(components.KindFlame, 140, 100, 0)

	w.act(a)
	w.act(b)

	if w.alive(debris) || w.alive(hazard) {
		t.Error("damageable entities without health should be destroyed")
	}
}

func TestProjectileIgnoresPlayerAndFood(t *testing.T) {
	w, _ := newTestWorld(t)
	food := w.spawnFood(8, 128)
	spray := w.spawnProjectile(components.KindSpray, 4, 128, 0)

	w.act(spray)

	if !w.alive(spray) || !w.alive(food) {
		t.Error("projectile hit a non-target")
	}
	if got := w.PlayerStats().Health; got != 100 {
		t.Errorf("player health = %d, want 100", got)
	}
}

func TestEmptySpawnerSelfDestructsOnce(t *testing.T) {
	w, host := newTestWorld(t)
	e := w.spawnSpawner(128, 128)
	w.spawnerMap.Get(e).Remaining = [components.NumSpecies]int{}

	w.act(e)
	w.act(e)
	w.kill(e)

	if w.spawners != 0 {
		t.Errorf("spawners = %d, want 0", w.spawners)
	}
	if host.calls != 0 {
		t.Errorf("empty spawner drew %d random numbers", host.calls)
	}
	if !w.levelCleared() {
		t.Error("level should be cleared")
	}
}

func TestSpawnerEmits(t *testing.T) {
	w, host := newTestWorld(t)
	e := w.spawnSpawner(128, 128)
	w.spawnerMap.Get(e).Remaining = [components.NumSpecies]int{0, 0, 1}
	host.rolls = []int{1, 1}

	w.act(e)

	seekers := w.entitiesOf(components.KindSeeker)
	if len(seekers) != 1 {
		t.Fatalf("got %d seekers, want 1", len(seekers))
	}
	if p := w.pos(seekers[0]); p.X != 128 || p.Y != 128 {
		t.Errorf("seeker at (%v, %v), want the spawner position", p.X, p.Y)
	}
	if !w.spawnerMap.Get(e).Empty() {
		t.Error("spawner should be empty")
	}
	if w.organisms != 1 || host.count(SoundOrganismBorn) != 1 {
		t.Errorf("organisms %d sounds %v", w.organisms, host.sounds)
	}
}

func TestSpawnerHoldsOnFailedRoll(t *testing.T) {
	w, host := newTestWorld(t)
	e := w.spawnSpawner(128, 128)

	w.act(e) // fake RandInt returns 50

	if w.organisms != 0 || host.calls != 1 {
		t.Errorf("organisms %d calls %d, want 0 and 1", w.organisms, host.calls)
	}
	if got := w.spawnerMap.Get(e).Remaining; got != [components.NumSpecies]int{5, 3, 2} {
		t.Errorf("remaining = %v", got)
	}
}
