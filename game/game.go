// Package game implements the arena simulation engine: it owns every entity of
// a level, runs their behaviors once per tick and reports how the tick ended.
package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/systems"
	"github.com/pthm-cable/petri/telemetry"
)

// GridCellSize is the blocker grid cell size.
const GridCellSize = 16.0

// World holds the complete simulation state of one level.
// It is the context every behavior receives.
type World struct {
	cfg        *config.Config
	host       Host
	arena      systems.Arena
	difficulty systems.Difficulty

	world *ecs.World

	// Entity creators, one per archetype
	playerMapper     *ecs.Map5[components.Position, components.Rotation, components.Actor, components.Health, components.Player]
	organismMapper   *ecs.Map5[components.Position, components.Rotation, components.Actor, components.Health, components.Organism]
	pickupMapper     *ecs.Map4[components.Position, components.Rotation, components.Actor, components.Pickup]
	projectileMapper *ecs.Map4[components.Position, components.Rotation, components.Actor, components.Projectile]
	spawnerMapper    *ecs.Map4[components.Position, components.Rotation, components.Actor, components.Spawner]
	blockerMapper    *ecs.Map4[components.Position, components.Rotation, components.Actor, components.Blocker]
	foodMapper       *ecs.Map4[components.Position, components.Rotation, components.Actor, components.Edible]

	// Individual component mappers for lookups
	posMap        *ecs.Map1[components.Position]
	rotMap        *ecs.Map1[components.Rotation]
	actorMap      *ecs.Map1[components.Actor]
	healthMap     *ecs.Map1[components.Health]
	playerMap     *ecs.Map1[components.Player]
	orgMap        *ecs.Map1[components.Organism]
	pickupMap     *ecs.Map1[components.Pickup]
	projectileMap *ecs.Map1[components.Projectile]
	spawnerMap    *ecs.Map1[components.Spawner]

	// Blocker scan for grid rebuilds
	blockerFilter *ecs.Filter3[components.Position, components.Actor, components.Blocker]

	// Blocker index, rebuilt when a blocker dies
	blockers      *systems.SpatialGrid
	blockersDirty bool

	// Behavior strategy per kind
	behaviors [components.NumKinds]behavior

	// Level state
	player    ecs.Entity
	hasPlayer bool
	order     []ecs.Entity // every non-player entity in insertion order
	organisms int          // live organisms
	spawners  int          // live spawners

	tick  int
	acted int // behaviors run this tick

	// Telemetry (all optional)
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	statsCallback func(telemetry.WindowStats)
}

// NewWorld creates an empty world. Call InitLevel to populate it.
func NewWorld(cfg *config.Config, host Host) *World {
	world := ecs.NewWorld()

	w := &World{
		cfg:        cfg,
		host:       host,
		arena:      systems.NewArena(cfg),
		difficulty: systems.NewDifficulty(cfg),
		world:      world,

		playerMapper:     ecs.NewMap5[components.Position, components.Rotation, components.Actor, components.Health, components.Player](world),
		organismMapper:   ecs.NewMap5[components.Position, components.Rotation, components.Actor, components.Health, components.Organism](world),
		pickupMapper:     ecs.NewMap4[components.Position, components.Rotation, components.Actor, components.Pickup](world),
		projectileMapper: ecs.NewMap4[components.Position, components.Rotation, components.Actor, components.Projectile](world),
		spawnerMapper:    ecs.NewMap4[components.Position, components.Rotation, components.Actor, components.Spawner](world),
		blockerMapper:    ecs.NewMap4[components.Position, components.Rotation, components.Actor, components.Blocker](world),
		foodMapper:       ecs.NewMap4[components.Position, components.Rotation, components.Actor, components.Edible](world),

		posMap:        ecs.NewMap1[components.Position](world),
		rotMap:        ecs.NewMap1[components.Rotation](world),
		actorMap:      ecs.NewMap1[components.Actor](world),
		healthMap:     ecs.NewMap1[components.Health](world),
		playerMap:     ecs.NewMap1[components.Player](world),
		orgMap:        ecs.NewMap1[components.Organism](world),
		pickupMap:     ecs.NewMap1[components.Pickup](world),
		projectileMap: ecs.NewMap1[components.Projectile](world),
		spawnerMap:    ecs.NewMap1[components.Spawner](world),

		blockerFilter: ecs.NewFilter3[components.Position, components.Actor, components.Blocker](world),

		blockers: systems.NewSpatialGrid(cfg.Arena.Width, cfg.Arena.Height, GridCellSize),
	}
	w.behaviors = behaviorTable()

	return w
}

// SetTelemetry attaches optional telemetry sinks. onStats is called with each
// flushed window.
func (w *World) SetTelemetry(c *telemetry.Collector, p *telemetry.PerfCollector, onStats func(telemetry.WindowStats)) {
	w.collector = c
	w.perfCollector = p
	w.statsCallback = onStats
}

// TickCount returns the number of ticks run since the world was created.
func (w *World) TickCount() int {
	return w.tick
}

// Arena returns the arena geometry.
func (w *World) Arena() systems.Arena {
	return w.arena
}
