package game

import (
	"log/slog"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/systems"
	"github.com/pthm-cable/petri/telemetry"
)

// Tick advances the level by one step.
//
// The player acts first, then every entity in insertion order, including ones
// spawned earlier in this same pass. After each live entity acts, a dead
// player ends the tick with PlayerDied (one life is taken) and a cleared
// level ends it with LevelFinished; entities not yet reached do not act.
// A completed pass purges the dead, rolls environment spawns and publishes
// the status line.
func (w *World) Tick() Status {
	w.tick++
	w.acted = 0
	w.startTick()
	status := w.step()
	w.endTick(status)
	return status
}

func (w *World) step() Status {
	if !w.playerAlive() {
		return PlayerDied
	}

	w.startPhase(telemetry.PhaseAct)
	w.act(w.player)

	// len is re-read each step so entities appended mid-pass are reached
	for i := 0; i < len(w.order); i++ {
		e := w.order[i]
		if !w.alive(e) {
			continue
		}
		w.act(e)

		if !w.playerAlive() {
			w.host.DecLives()
			slog.Info("player_died", "tick", w.tick, "level", w.host.Level(), "lives", w.host.Lives())
			return PlayerDied
		}
		if w.levelCleared() {
			return LevelFinished
		}
	}

	if w.levelCleared() {
		return LevelFinished
	}

	w.startPhase(telemetry.PhasePurge)
	w.purge()

	w.startPhase(telemetry.PhaseEnvironment)
	w.spawnEnvironment()

	w.startPhase(telemetry.PhaseStatus)
	w.publishStatus()

	w.startPhase(telemetry.PhaseTelemetry)
	w.flushTelemetry()

	return Continue
}

// spawnEnvironment rolls the independent hazard and pickup spawns, both on
// the boundary circle.
func (w *World) spawnEnvironment() {
	level := w.host.Level()

	if systems.Roll(w.host, w.difficulty.HazardOdds(level)) {
		x, y := w.arena.BoundaryPoint(w.host)
		w.spawnPickup(components.KindHazard, x, y)
	}

	if systems.Roll(w.host, w.difficulty.PickupOdds(level)) {
		kind := systems.PickupKind(w.host)
		x, y := w.arena.BoundaryPoint(w.host)
		w.spawnPickup(kind, x, y)
	}
}

// StatusLine returns the current status values.
func (w *World) StatusLine() systems.StatusLine {
	ps := w.PlayerStats()
	return systems.StatusLine{
		Score:  w.host.Score(),
		Level:  w.host.Level(),
		Lives:  w.host.Lives(),
		Health: ps.Health,
		Sprays: ps.Sprays,
		Flames: ps.Flames,
	}
}

func (w *World) publishStatus() {
	w.host.SetStatus(w.StatusLine().String())
}
