package components

// Actor is carried by every entity: its kind and liveness.
// Alive flips to false exactly once; the entity is removed at the end of the tick.
type Actor struct {
	Kind  Kind
	Alive bool
}

// Health is carried by health-bearing entities.
type Health struct {
	HP int
}

// Player holds the player agent's weapon state.
type Player struct {
	Sprays      int  // 0..max_sprays
	Flames      int  // never negative
	CanRecharge bool // spray regeneration eligibility for the next idle tick
}

// Organism holds hostile organism state shared by all species.
type Organism struct {
	Damage    int     // contact damage applied to the player
	Step      float64 // distance per movement attempt
	PlanTicks int     // remaining ticks of the committed wander heading
	FoodEaten int     // 0..food_to_divide
}

// Pickup holds pickup and hazard state.
type Pickup struct {
	Remaining int // ticks until silent expiry
	Score     int // signed score awarded on contact
}

// Projectile holds projectile travel state.
type Projectile struct {
	Budget   float64 // maximum travel distance
	Traveled float64
	Step     float64
	Damage   int
}

// Spawner holds remaining organisms to emit, indexed by Species.
type Spawner struct {
	Remaining [NumSpecies]int
}

// Empty reports whether every species quota is exhausted.
func (s *Spawner) Empty() bool {
	for _, n := range s.Remaining {
		if n > 0 {
			return false
		}
	}
	return true
}
