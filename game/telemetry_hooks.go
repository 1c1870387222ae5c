package game

import "github.com/pthm-cable/petri/telemetry"

// record forwards an event to the collector, if any.
func (w *World) record(ev telemetry.Event) {
	if w.collector != nil {
		w.collector.Record(ev)
	}
}

func (w *World) startTick() {
	if w.perfCollector != nil {
		w.perfCollector.StartTick()
	}
}

func (w *World) startPhase(phase telemetry.Phase) {
	if w.perfCollector != nil {
		w.perfCollector.StartPhase(phase)
	}
}

// endTick closes the perf sample with how the tick ended.
func (w *World) endTick(status Status) {
	if w.perfCollector == nil {
		return
	}
	outcome := telemetry.OutcomeContinue
	switch status {
	case PlayerDied:
		outcome = telemetry.OutcomePlayerDied
	case LevelFinished:
		outcome = telemetry.OutcomeLevelFinished
	}
	w.perfCollector.EndTick(outcome, w.acted, len(w.order))
}

// flushTelemetry samples the population and hands a finished window to the
// stats callback.
func (w *World) flushTelemetry() {
	if w.collector == nil {
		return
	}
	w.collector.SampleOrganisms(w.organisms)
	if !w.collector.ShouldFlush(w.tick) {
		return
	}

	stats := w.collector.Flush(w.tick, telemetry.Snapshot{
		Level:     w.host.Level(),
		Score:     w.host.Score(),
		Organisms: w.organisms,
		Spawners:  w.spawners,
		Health:    w.PlayerStats().Health,
	})
	if w.statsCallback != nil {
		w.statsCallback(stats)
	}
}
