package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/session"
	"github.com/pthm-cable/petri/tui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without a terminal, driven by the autopilot")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	level := flag.Int("level", 0, "Starting level (0 = use config)")
	verbose := flag.Bool("v", false, "Log debug events such as sounds")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := session.Options{
		Seed:        rngSeed,
		LogStats:    *logStats,
		StatsWindow: *statsWindow,
		OutputDir:   *outputDir,
		StartLevel:  *level,
	}

	if *headless {
		// JSON to stdout for structured logging
		logLevel := slog.LevelInfo
		if *verbose {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
		slog.SetDefault(logger)

		autopilot := session.NewAutopilot(rngSeed+1, cfg.Session.AutopilotIdle)
		s, err := session.New(cfg, autopilot, opts)
		if err != nil {
			slog.Error("failed to start session", "error", err)
			os.Exit(1)
		}
		defer s.Close()

		slog.Info("starting headless session",
			"seed", rngSeed,
			"level", s.Level(),
			"max_ticks", *maxTicks,
		)
		s.Run(*maxTicks)
		slog.Info("session_end",
			"score", s.Score(),
			"level", s.Level(),
			"lives", s.Lives(),
			"tick", s.World().TickCount(),
		)
		return
	}

	// The terminal owns stdout, so logs go to stderr as JSON
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	frontend, err := tui.New(cfg.Arena.Width, cfg.Arena.Height)
	if err != nil {
		slog.Error("failed to initialize terminal", "error", err)
		os.Exit(1)
	}
	defer frontend.Close()

	s, err := session.New(cfg, frontend, opts)
	if err != nil {
		frontend.Close()
		slog.Error("failed to start session", "error", err)
		os.Exit(1)
	}
	defer s.Close()

	frontend.Run(s, cfg.Session.TickRate, *maxTicks)
}
