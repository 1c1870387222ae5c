package telemetry

import "github.com/pthm-cable/petri/components"

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int

	// Current window tracking
	windowStartTick int

	// Event counters for current window
	births      [components.NumSpecies]int
	deaths      [components.NumSpecies]int
	spraysFired int
	flamesFired int
	pickups     int
	hazards     int
	playerHits  int
	damageTaken int

	// Per-tick organism population samples
	population []float64
}

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: windowTicks,
		population:          make([]float64, 0, windowTicks),
	}
}

// Record counts an event in the current window.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventBirth:
		if s, ok := components.SpeciesOf(ev.Kind); ok {
			c.births[s]++
		}
	case EventDeath:
		if s, ok := components.SpeciesOf(ev.Kind); ok {
			c.deaths[s]++
		}
	case EventShot:
		switch ev.Kind {
		case components.KindSpray:
			c.spraysFired++
		case components.KindFlame:
			c.flamesFired++
		}
	case EventPickup:
		if ev.Kind == components.KindHazard {
			c.hazards++
		} else {
			c.pickups++
		}
	case EventPlayerHit:
		c.playerHits++
		c.damageTaken += ev.Amount
	}
}

// SampleOrganisms records the live organism count for this tick.
func (c *Collector) SampleOrganisms(n int) {
	c.population = append(c.population, float64(n))
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Snapshot holds the world state sampled at flush time.
type Snapshot struct {
	Level     int
	Score     int
	Organisms int
	Spawners  int
	Health    int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int, snap Snapshot) WindowStats {
	mean, std := PopulationStats(c.population)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Level:     snap.Level,
		Score:     snap.Score,
		Organisms: snap.Organisms,
		Spawners:  snap.Spawners,
		Health:    snap.Health,

		WandererBirths: c.births[components.SpeciesWanderer],
		StalkerBirths:  c.births[components.SpeciesStalker],
		SeekerBirths:   c.births[components.SpeciesSeeker],
		WandererDeaths: c.deaths[components.SpeciesWanderer],
		StalkerDeaths:  c.deaths[components.SpeciesStalker],
		SeekerDeaths:   c.deaths[components.SpeciesSeeker],

		SpraysFired: c.spraysFired,
		FlamesFired: c.flamesFired,
		Pickups:     c.pickups,
		Hazards:     c.hazards,
		PlayerHits:  c.playerHits,
		DamageTaken: c.damageTaken,

		OrganismsMean: mean,
		OrganismsStd:  std,
	}

	c.Reset(currentTick)
	return stats
}

// Reset clears counters and starts a new window at tick.
func (c *Collector) Reset(tick int) {
	c.windowStartTick = tick
	c.births = [components.NumSpecies]int{}
	c.deaths = [components.NumSpecies]int{}
	c.spraysFired = 0
	c.flamesFired = 0
	c.pickups = 0
	c.hazards = 0
	c.playerHits = 0
	c.damageTaken = 0
	c.population = c.population[:0]
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int {
	return c.windowDurationTicks
}
