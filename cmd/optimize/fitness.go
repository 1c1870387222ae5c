package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/session"
)

// FitnessEvaluator runs headless autopilot sessions and scores how close
// their survival time lands to a target.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int
	targetTicks int
	seeds       []int64
	baseConfig  *config.Config

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
	lastTicks   float64 // mean survival from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, targetTicks, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		targetTicks: max(targetTicks, 1),
		seeds:       seeds,
		baseConfig:  baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// LastTicks returns the mean survival ticks from the most recent evaluation.
func (fe *FitnessEvaluator) LastTicks() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastTicks
}

// runResult holds the results from a single session.
type runResult struct {
	survivalTicks int // ticks until game over (or maxTicks)
	levelsCleared int
	score         int
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup

	// Sessions share nothing but the read-only config
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSession(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality, totalTicks float64
	for _, r := range results {
		quality := computeQuality(r)
		totalFitness += fe.computeFitness(r, quality)
		totalQuality += quality
		totalTicks += float64(r.survivalTicks)
	}

	n := float64(len(fe.seeds))
	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.lastTicks = totalTicks / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSession plays one autopilot game until game over or maxTicks.
func (fe *FitnessEvaluator) runSession(cfg *config.Config, seed int64) runResult {
	autopilot := session.NewAutopilot(seed+1, cfg.Session.AutopilotIdle)
	s, err := session.New(cfg, autopilot, session.Options{Seed: seed})
	if err != nil {
		// Only output setup can fail, and output is disabled here
		return runResult{}
	}
	defer s.Close()

	startLevel := s.Level()
	s.Run(fe.maxTicks)

	return runResult{
		survivalTicks: s.World().TickCount(),
		levelsCleared: s.Level() - startLevel,
		score:         s.Score(),
	}
}

// copyConfig returns an independent copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	// Config holds no references, so a value copy is deep
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness is the squared relative survival error, discounted by up
// to 20% for sessions that also clear levels.
func (fe *FitnessEvaluator) computeFitness(r runResult, quality float64) float64 {
	target := float64(fe.targetTicks)
	relErr := (float64(r.survivalTicks) - target) / target
	return relErr*relErr*(1.0-0.2*quality) + 0.01*(1.0-quality)
}

// qualityLevels is the number of cleared levels that earns full quality.
const qualityLevels = 3

// computeQuality rewards progress: cleared levels, plus a small share for
// a positive score.
func computeQuality(r runResult) float64 {
	quality := float64(r.levelsCleared) / qualityLevels
	if r.score > 0 {
		quality += 0.1 * (1 - math.Exp(-float64(r.score)/1000))
	}
	return clamp01(quality)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
