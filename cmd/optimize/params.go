// Package main provides CMA-ES tuning of petri difficulty parameters.
package main

import (
	"math"

	"github.com/pthm-cable/petri/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
	Integer bool    // Rounded when applied
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of difficulty parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Spawners
			{Name: "emit_chance", Path: "spawner.emit_chance", Min: 10, Max: 200, Default: 50, Integer: true},
			// Organisms
			{Name: "food_to_divide", Path: "organisms.food_to_divide", Min: 1, Max: 8, Default: 3, Integer: true},
			{Name: "wanderer_step", Path: "organisms.species.wanderer.step", Min: 1, Max: 6, Default: 3},
			{Name: "stalker_activation", Path: "organisms.species.stalker.activation_radius", Min: 16, Max: 200, Default: 72},
			{Name: "seeker_step", Path: "organisms.species.seeker.step", Min: 1, Max: 5, Default: 2},
			// Environment
			{Name: "hazard_base", Path: "environment.hazard_base", Min: 100, Max: 1500, Default: 510, Integer: true},
			{Name: "pickup_base", Path: "environment.pickup_base", Min: 100, Max: 1500, Default: 510, Integer: true},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp bounds every value and rounds integer parameters.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := min(max(v[i], spec.Min), spec.Max)
		if spec.Integer {
			val = math.Round(val)
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	i := 0

	cfg.Spawner.EmitChance = int(clamped[i])
	i++

	cfg.Organisms.FoodToDivide = int(clamped[i])
	i++
	cfg.Organisms.Species.Wanderer.Step = clamped[i]
	i++
	cfg.Organisms.Species.Stalker.ActivationRadius = clamped[i]
	i++
	cfg.Organisms.Species.Seeker.Step = clamped[i]
	i++

	cfg.Environment.HazardBase = int(clamped[i])
	i++
	cfg.Environment.PickupBase = int(clamped[i])
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		float64(cfg.Spawner.EmitChance),
		float64(cfg.Organisms.FoodToDivide),
		cfg.Organisms.Species.Wanderer.Step,
		cfg.Organisms.Species.Stalker.ActivationRadius,
		cfg.Organisms.Species.Seeker.Step,
		float64(cfg.Environment.HazardBase),
		float64(cfg.Environment.PickupBase),
	}
}
