package systems

import (
	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/config"
)

// Difficulty evaluates the level-scaled formulas.
type Difficulty struct {
	cfg *config.Config
}

// NewDifficulty wraps the config's scaling parameters.
func NewDifficulty(cfg *config.Config) Difficulty {
	return Difficulty{cfg: cfg}
}

// SpawnerCount returns how many spawners a level starts with.
func (d Difficulty) SpawnerCount(level int) int {
	return max(level, 1)
}

// FoodCount returns how many consumables a level starts with.
func (d Difficulty) FoodCount(level int) int {
	lc := d.cfg.Level
	return max(min(lc.FoodPerLevel*level, lc.MaxFood), 0)
}

// DebrisCount returns how many blockers a level starts with.
func (d Difficulty) DebrisCount(level int) int {
	lc := d.cfg.Level
	return max(lc.DebrisBase-lc.DebrisPerLevel*level, lc.MinDebris)
}

// HazardOdds returns N for the 1-in-N per-tick hazard spawn chance.
func (d Difficulty) HazardOdds(level int) int {
	ec := d.cfg.Environment
	return max(ec.HazardBase-ec.PerLevel*level, ec.HazardFloor)
}

// PickupOdds returns N for the 1-in-N per-tick pickup spawn chance.
func (d Difficulty) PickupOdds(level int) int {
	ec := d.cfg.Environment
	return max(ec.PickupBase-ec.PerLevel*level, ec.PickupFloor)
}

// PickupLifetime draws the lifetime in ticks of a new pickup or hazard.
func (d Difficulty) PickupLifetime(rng RNG, level int) int {
	pc := d.cfg.Pickups
	hi := max(pc.LifetimeBase-pc.LifetimePerLevel*level-1, 0)
	return max(rng.RandInt(0, hi), pc.MinLifetime)
}

// Roll reports whether a 1-in-odds event happens.
func Roll(rng RNG, odds int) bool {
	if odds <= 1 {
		return true
	}
	return rng.RandInt(0, odds-1) == 0
}

// pickupKinds orders the beneficial pickups for the 10-way draw.
var pickupKinds = [...]components.Kind{
	components.KindLifePickup,
	components.KindFlamePickup,
	components.KindHealthPickup,
}

var pickupWeights = []int{1, 3, 6}

// PickupKind draws a beneficial pickup kind: 1/10 life, 3/10 flame, 6/10 health.
func PickupKind(rng RNG) components.Kind {
	i, _ := WeightedIndex(rng, pickupWeights)
	return pickupKinds[i]
}
