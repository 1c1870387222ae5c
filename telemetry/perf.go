package telemetry

import (
	"log/slog"
	"math"
	"time"
)

// Phase identifies a timed section of a tick.
type Phase uint8

const (
	PhaseAct Phase = iota
	PhasePurge
	PhaseEnvironment
	PhaseStatus
	PhaseTelemetry
	NumPhases
)

var phaseNames = [NumPhases]string{"act", "purge", "environment", "status", "telemetry"}

func (p Phase) String() string {
	if p < NumPhases {
		return phaseNames[p]
	}
	return "unknown"
}

// TickOutcome is how a tick ended.
type TickOutcome uint8

const (
	OutcomeContinue TickOutcome = iota
	OutcomePlayerDied
	OutcomeLevelFinished
	NumOutcomes
)

// TickSample is the measurement of one tick.
// Ticks that end early never reach the later phases, so those stay zero.
type TickSample struct {
	Duration time.Duration
	Phases   [NumPhases]time.Duration
	Outcome  TickOutcome
	Acted    int // entities whose behavior ran
	Queued   int // entities in the tick queue when the tick ended
}

// PerfCollector keeps the last windowSize tick samples.
type PerfCollector struct {
	now func() time.Time

	samples []TickSample
	next    int
	filled  int

	cur        TickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool
}

// NewPerfCollector creates a collector over a rolling window of ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &PerfCollector{
		now:     time.Now,
		samples: make([]TickSample, windowSize),
	}
}

// StartTick begins a new sample.
func (p *PerfCollector) StartTick() {
	p.cur = TickSample{}
	p.tickStart = p.now()
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and opens ph.
func (p *PerfCollector) StartPhase(ph Phase) {
	now := p.now()
	p.closePhase(now)
	p.phase = ph
	p.phaseStart = now
	p.inPhase = true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.cur.Phases[p.phase] += now.Sub(p.phaseStart)
		p.inPhase = false
	}
}

// EndTick closes the sample with the tick's outcome and entity counts.
func (p *PerfCollector) EndTick(outcome TickOutcome, acted, queued int) {
	now := p.now()
	p.closePhase(now)

	p.cur.Duration = now.Sub(p.tickStart)
	p.cur.Outcome = outcome
	p.cur.Acted = acted
	p.cur.Queued = queued

	p.samples[p.next] = p.cur
	p.next = (p.next + 1) % len(p.samples)
	if p.filled < len(p.samples) {
		p.filled++
	}
}

// Last returns the most recent sample. ok is false before the first tick.
func (p *PerfCollector) Last() (TickSample, bool) {
	if p.filled == 0 {
		return TickSample{}, false
	}
	i := (p.next - 1 + len(p.samples)) % len(p.samples)
	return p.samples[i], true
}

// PerfStats summarizes the samples in the window.
type PerfStats struct {
	Ticks    int
	AvgTick  time.Duration
	MaxTick  time.Duration
	PhasePct [NumPhases]float64 // share of total tick time
	Outcomes [NumOutcomes]int

	AvgActed  float64
	MaxActed  int
	AvgQueued float64

	// Mean act-phase time per entity that acted
	ActPerEntity time.Duration
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Ticks: p.filled}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var phaseSum [NumPhases]time.Duration
	acted, queued := 0, 0
	for _, smp := range p.samples[:p.filled] {
		total += smp.Duration
		s.MaxTick = max(s.MaxTick, smp.Duration)
		for ph, d := range smp.Phases {
			phaseSum[ph] += d
		}
		s.Outcomes[smp.Outcome]++
		acted += smp.Acted
		queued += smp.Queued
		s.MaxActed = max(s.MaxActed, smp.Acted)
	}

	n := float64(p.filled)
	s.AvgTick = total / time.Duration(p.filled)
	s.AvgActed = float64(acted) / n
	s.AvgQueued = float64(queued) / n
	if total > 0 {
		for ph, d := range phaseSum {
			s.PhasePct[ph] = float64(d) / float64(total) * 100
		}
	}
	if acted > 0 {
		s.ActPerEntity = phaseSum[PhaseAct] / time.Duration(acted)
	}
	return s
}

// LogStats logs the window summary.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Int("player_died", s.Outcomes[OutcomePlayerDied]),
		slog.Int("level_finished", s.Outcomes[OutcomeLevelFinished]),
		slog.Float64("avg_acted", math.Round(s.AvgActed*10)/10),
		slog.Int("max_acted", s.MaxActed),
		slog.Int64("act_ns_per_entity", s.ActPerEntity.Nanoseconds()),
	}
	for ph := Phase(0); ph < NumPhases; ph++ {
		if pct := s.PhasePct[ph]; pct > 0.1 {
			attrs = append(attrs, slog.Float64(ph.String()+"_pct", math.Round(pct*10)/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd      int     `csv:"window_end"`
	Ticks          int     `csv:"ticks"`
	AvgTickUS      int64   `csv:"avg_tick_us"`
	MaxTickUS      int64   `csv:"max_tick_us"`
	ActPct         float64 `csv:"act_pct"`
	PurgePct       float64 `csv:"purge_pct"`
	EnvironmentPct float64 `csv:"environment_pct"`
	StatusPct      float64 `csv:"status_pct"`
	TelemetryPct   float64 `csv:"telemetry_pct"`
	Continued      int     `csv:"continued"`
	PlayerDied     int     `csv:"player_died"`
	LevelFinished  int     `csv:"level_finished"`
	AvgActed       float64 `csv:"avg_acted"`
	MaxActed       int     `csv:"max_acted"`
	AvgQueued      float64 `csv:"avg_queued"`
	ActNSPerEntity int64   `csv:"act_ns_per_entity"`
}

// ToCSV flattens the stats for perf.csv.
func (s PerfStats) ToCSV(windowEnd int) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:      windowEnd,
		Ticks:          s.Ticks,
		AvgTickUS:      s.AvgTick.Microseconds(),
		MaxTickUS:      s.MaxTick.Microseconds(),
		ActPct:         s.PhasePct[PhaseAct],
		PurgePct:       s.PhasePct[PhasePurge],
		EnvironmentPct: s.PhasePct[PhaseEnvironment],
		StatusPct:      s.PhasePct[PhaseStatus],
		TelemetryPct:   s.PhasePct[PhaseTelemetry],
		Continued:      s.Outcomes[OutcomeContinue],
		PlayerDied:     s.Outcomes[OutcomePlayerDied],
		LevelFinished:  s.Outcomes[OutcomeLevelFinished],
		AvgActed:       s.AvgActed,
		MaxActed:       s.MaxActed,
		AvgQueued:      s.AvgQueued,
		ActNSPerEntity: s.ActPerEntity.Nanoseconds(),
	}
}
