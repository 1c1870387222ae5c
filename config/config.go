// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Player      PlayerConfig      `yaml:"player"`
	Organisms   OrganismsConfig   `yaml:"organisms"`
	Projectiles ProjectilesConfig `yaml:"projectiles"`
	Pickups     PickupsConfig     `yaml:"pickups"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Environment EnvironmentConfig `yaml:"environment"`
	Level       LevelConfig       `yaml:"level"`
	Session     SessionConfig     `yaml:"session"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ArenaConfig holds arena geometry.
// The arena is a circle inscribed in a Width x Height view.
type ArenaConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Radius            float64 `yaml:"radius"`          // Organisms may not step beyond this distance from center
	InteriorRadius    float64 `yaml:"interior_radius"` // Level placement stays within this radius
	SpriteWidth       float64 `yaml:"sprite_width"`    // Shared collision diameter
	PlacementAttempts int     `yaml:"placement_attempts"`
}

// PlayerConfig holds player agent parameters.
type PlayerConfig struct {
	MaxHealth   int     `yaml:"max_health"`
	MaxSprays   int     `yaml:"max_sprays"`
	StartFlames int     `yaml:"start_flames"`
	RotateStep  float64 `yaml:"rotate_step"` // Degrees per rotate key
}

// SpeciesConfig holds the stats of one hostile organism species.
type SpeciesConfig struct {
	Health           int     `yaml:"health"`
	Damage           int     `yaml:"damage"`            // Contact damage applied to the player
	Step             float64 `yaml:"step"`              // Distance per movement attempt
	ActivationRadius float64 `yaml:"activation_radius"` // Player pursuit radius (0 = never pursues)
}

// SpeciesSet holds one value per organism species.
type SpeciesSet[T any] struct {
	Wanderer T `yaml:"wanderer"`
	Stalker  T `yaml:"stalker"`
	Seeker   T `yaml:"seeker"`
}

// At returns the value for a species index (wanderer, stalker, seeker order).
func (s SpeciesSet[T]) At(i int) T {
	switch i {
	case 1:
		return s.Stalker
	case 2:
		return s.Seeker
	}
	return s.Wanderer
}

// OrganismsConfig holds hostile organism parameters.
type OrganismsConfig struct {
	FoodToDivide     int                       `yaml:"food_to_divide"`
	WanderCommitment int                       `yaml:"wander_commitment"` // Ticks a random heading is held
	FoodSearchRadius float64                   `yaml:"food_search_radius"`
	KillScore        int                       `yaml:"kill_score"`
	Species          SpeciesSet[SpeciesConfig] `yaml:"species"`
	SeekerAttempts   int                       `yaml:"seeker_attempts"`
	SeekerTurn       float64                   `yaml:"seeker_turn"` // Degrees rotated between failed attempts
}

// ProjectileConfig holds one projectile type's parameters.
type ProjectileConfig struct {
	Budget float64 `yaml:"budget"` // Maximum travel distance
	Damage int     `yaml:"damage"`
}

// ProjectilesConfig holds projectile parameters.
type ProjectilesConfig struct {
	Flame      ProjectileConfig `yaml:"flame"`
	Spray      ProjectileConfig `yaml:"spray"`
	FlameCount int              `yaml:"flame_count"` // Flames per flamethrower discharge
}

// PickupsConfig holds pickup and hazard parameters.
type PickupsConfig struct {
	MinLifetime      int `yaml:"min_lifetime"`
	LifetimeBase     int `yaml:"lifetime_base"`
	LifetimePerLevel int `yaml:"lifetime_per_level"`
	HealthScore      int `yaml:"health_score"`
	FlameScore       int `yaml:"flame_score"`
	LifeScore        int `yaml:"life_score"`
	HazardScore      int `yaml:"hazard_score"`
	HazardDamage     int `yaml:"hazard_damage"`
	FlameRecharge    int `yaml:"flame_recharge"`
}

// SpawnerConfig holds spawner parameters.
type SpawnerConfig struct {
	Quota      SpeciesSet[int] `yaml:"quota"`
	EmitChance int             `yaml:"emit_chance"` // One emission per EmitChance ticks on average
}

// EnvironmentConfig holds per-tick environment spawn odds.
// Odds are 1 in max(base - per_level*level, floor).
type EnvironmentConfig struct {
	HazardBase  int `yaml:"hazard_base"`
	HazardFloor int `yaml:"hazard_floor"`
	PickupBase  int `yaml:"pickup_base"`
	PickupFloor int `yaml:"pickup_floor"`
	PerLevel    int `yaml:"per_level"`
}

// LevelConfig holds level layout scaling.
type LevelConfig struct {
	FoodPerLevel   int `yaml:"food_per_level"`
	MaxFood        int `yaml:"max_food"`
	DebrisBase     int `yaml:"debris_base"`
	DebrisPerLevel int `yaml:"debris_per_level"`
	MinDebris      int `yaml:"min_debris"`
}

// SessionConfig holds reference host parameters.
type SessionConfig struct {
	StartLives    int     `yaml:"start_lives"`
	StartLevel    int     `yaml:"start_level"`
	TickRate      int     `yaml:"tick_rate"`      // Ticks per second in terminal mode
	AutopilotIdle float64 `yaml:"autopilot_idle"` // Probability the autopilot presses nothing
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // Ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CenterX         float64 // Arena center
	CenterY         float64
	HalfSpriteWidth float64 // Blocker clearance radius
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the engine cannot run with.
func (c *Config) validate() error {
	if c.Arena.SpriteWidth <= 0 {
		return fmt.Errorf("arena.sprite_width must be positive, got %v", c.Arena.SpriteWidth)
	}
	if c.Arena.Radius <= 0 || c.Arena.InteriorRadius <= 0 {
		return fmt.Errorf("arena radii must be positive, got %v and %v", c.Arena.Radius, c.Arena.InteriorRadius)
	}
	if c.Spawner.EmitChance < 1 {
		return fmt.Errorf("spawner.emit_chance must be at least 1, got %d", c.Spawner.EmitChance)
	}
	if c.Environment.HazardFloor < 1 || c.Environment.PickupFloor < 1 {
		return fmt.Errorf("environment floors must be at least 1")
	}
	if c.Organisms.FoodToDivide < 1 {
		return fmt.Errorf("organisms.food_to_divide must be at least 1, got %d", c.Organisms.FoodToDivide)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CenterX = c.Arena.Width / 2
	c.Derived.CenterY = c.Arena.Height / 2
	c.Derived.HalfSpriteWidth = c.Arena.SpriteWidth / 2

	if c.Arena.PlacementAttempts < 1 {
		c.Arena.PlacementAttempts = 1
	}
	if c.Telemetry.StatsWindow < 1 {
		c.Telemetry.StatsWindow = 600
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
