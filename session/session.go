// Package session hosts the engine. It owns score, lives and level, supplies
// randomness and input, and turns tick outcomes into level restarts, level
// advances and game over.
package session

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/game"
	"github.com/pthm-cable/petri/telemetry"
)

// Options configures a session.
type Options struct {
	Seed        int64
	LogStats    bool   // Log each stats window via slog
	StatsWindow int    // Ticks per stats window (0 = use config)
	OutputDir   string // Directory for CSV logs (empty = disabled)
	StartLevel  int    // First level (0 = use config)
}

// Session is the reference host. It implements game.Host.
type Session struct {
	cfg   *config.Config
	rng   *rand.Rand
	input game.Input
	world *game.World

	score  int
	lives  int
	level  int
	status string
	over   bool

	// Current level attempt
	attempt        int
	levelStartTick int

	sounds [game.NumSounds]int

	// Telemetry
	logStats         bool
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
}

// New creates a session and lays out its first level. input may be nil,
// in which case the player never acts.
func New(cfg *config.Config, input game.Input, opts Options) (*Session, error) {
	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := outputManager.WriteConfig(cfg); err != nil {
		outputManager.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	window := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		window = opts.StatsWindow
	}
	level := cfg.Session.StartLevel
	if opts.StartLevel > 0 {
		level = opts.StartLevel
	}

	s := &Session{
		cfg:              cfg,
		rng:              rand.New(rand.NewSource(opts.Seed)),
		input:            input,
		lives:            cfg.Session.StartLives,
		level:            max(level, 1),
		attempt:          1,
		logStats:         opts.LogStats,
		collector:        telemetry.NewCollector(window),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
		outputManager:    outputManager,
	}

	s.world = game.NewWorld(cfg, s)
	s.world.SetTelemetry(s.collector, s.perfCollector, s.onStats)
	s.startLevel()

	return s, nil
}

// Step runs one tick and applies its outcome. It returns the tick status;
// after game over it does nothing and returns PlayerDied.
func (s *Session) Step() game.Status {
	if s.over {
		return game.PlayerDied
	}

	status := s.world.Tick()
	switch status {
	case game.PlayerDied:
		s.finishAttempt("died")
		if s.lives > 0 {
			s.attempt++
			s.startLevel()
			break
		}
		s.over = true
		slog.Info("game_over",
			"score", s.score,
			"level", s.level,
			"tick", s.world.TickCount(),
		)
	case game.LevelFinished:
		s.finishAttempt("finished")
		slog.Info("level_finished", "level", s.level, "score", s.score)
		s.level++
		s.attempt = 1
		s.startLevel()
	}
	return status
}

// Run steps until game over or maxTicks ticks have run (0 = unlimited).
func (s *Session) Run(maxTicks int) {
	for !s.over {
		s.Step()
		if maxTicks > 0 && s.world.TickCount() >= maxTicks {
			slog.Info("max_ticks_reached", "tick", s.world.TickCount())
			return
		}
	}
}

func (s *Session) startLevel() {
	s.levelStartTick = s.world.TickCount()
	s.world.InitLevel()
}

// finishAttempt records how the current level attempt ended.
func (s *Session) finishAttempt(outcome string) {
	rec := telemetry.LevelRecord{
		Level:   s.level,
		Attempt: s.attempt,
		Outcome: outcome,
		Ticks:   s.world.TickCount() - s.levelStartTick,
		Score:   s.score,
		Lives:   s.lives,
	}
	if s.logStats {
		slog.Info("level_record", "record", rec)
	}
	if err := s.outputManager.WriteLevel(rec); err != nil {
		slog.Error("failed to write level record", "error", err)
	}
}

// onStats handles a flushed telemetry window.
func (s *Session) onStats(stats telemetry.WindowStats) {
	perfStats := s.perfCollector.Stats()

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := s.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := s.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range s.bookmarkDetector.Check(stats) {
		if s.logStats {
			bm.LogBookmark()
		}
		if err := s.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// Close flushes and closes telemetry output.
func (s *Session) Close() error {
	return s.outputManager.Close()
}

// Host implementation.

// PendingKey forwards to the session's input source.
func (s *Session) PendingKey() (game.Key, bool) {
	if s.input == nil {
		return 0, false
	}
	return s.input.PendingKey()
}

// RandInt returns a uniform integer in [lo, hi].
func (s *Session) RandInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *Session) AddScore(delta int) { s.score += delta }
func (s *Session) Score() int         { return s.score }
func (s *Session) Lives() int         { return s.lives }
func (s *Session) IncLives()          { s.lives++ }

// DecLives takes one life, never going below zero.
func (s *Session) DecLives() {
	if s.lives > 0 {
		s.lives--
	}
}

func (s *Session) Level() int { return s.level }

func (s *Session) SetStatus(text string) { s.status = text }

// PlaySound counts the sound and logs it at debug level.
func (s *Session) PlaySound(snd game.Sound) {
	if snd < game.NumSounds {
		s.sounds[snd]++
	}
	slog.Debug("sound", "name", snd.String(), "tick", s.world.TickCount())
}

// Accessors for frontends and tests.

// World returns the engine.
func (s *Session) World() *game.World { return s.world }

// Perf returns the tick phase timer, for frontends that record frame timing.
func (s *Session) Perf() *telemetry.PerfCollector { return s.perfCollector }

// Status returns the last published status line.
func (s *Session) Status() string { return s.status }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.over }

// Attempt returns the 1-based attempt number at the current level.
func (s *Session) Attempt() int { return s.attempt }

// SoundCount returns how many times snd has played.
func (s *Session) SoundCount(snd game.Sound) int {
	if snd >= game.NumSounds {
		return 0
	}
	return s.sounds[snd]
}
