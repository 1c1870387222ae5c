package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/game"
	"github.com/pthm-cable/petri/telemetry"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestNewSession(t *testing.T) {
	s, err := New(config.Default(), nil, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if s.Lives() != 3 || s.Level() != 1 || s.Score() != 0 || s.Attempt() != 1 {
		t.Errorf("lives %d level %d score %d attempt %d", s.Lives(), s.Level(), s.Score(), s.Attempt())
	}
	c := s.World().Census()
	if c.ByKind[components.KindPlayer] != 1 || c.ByKind[components.KindSpawner] != 1 {
		t.Errorf("unexpected census %+v", c.ByKind)
	}
}

func TestStartLevelOverride(t *testing.T) {
	s, err := New(config.Default(), nil, Options{Seed: 1, StartLevel: 4})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if s.Level() != 4 || s.World().Spawners() != 4 {
		t.Errorf("level %d spawners %d, want 4 and 4", s.Level(), s.World().Spawners())
	}
}

func TestRandIntInclusive(t *testing.T) {
	s, err := New(config.Default(), nil, Options{Seed: 42})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := s.RandInt(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("RandInt(3, 6) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("saw %d distinct values, want 4", len(seen))
	}
	if got := s.RandInt(5, 5); got != 5 {
		t.Errorf("RandInt(5, 5) = %d", got)
	}
}

func TestLedger(t *testing.T) {
	s, err := New(config.Default(), nil, Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	s.AddScore(250)
	s.AddScore(-50)
	s.IncLives()
	for i := 0; i < 10; i++ {
		s.DecLives()
	}
	if s.Score() != 200 {
		t.Errorf("score = %d, want 200", s.Score())
	}
	if s.Lives() != 0 {
		t.Errorf("lives = %d, want 0", s.Lives())
	}

	s.PlaySound(game.SoundSprayFired)
	s.PlaySound(game.SoundSprayFired)
	if s.SoundCount(game.SoundSprayFired) != 2 {
		t.Errorf("spray sounds = %d, want 2", s.SoundCount(game.SoundSprayFired))
	}
}

func TestLevelFinishedAdvances(t *testing.T) {
	cfg := config.Default()
	// Empty spawners self-destruct on their first act
	cfg.Spawner.Quota = config.SpeciesSet[int]{}
	dir := t.TempDir()

	s, err := New(cfg, nil, Options{Seed: 5, OutputDir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 2; i++ {
		if got := s.Step(); got != game.LevelFinished {
			t.Fatalf("step %d = %v, want level finished", i, got)
		}
	}
	if s.Level() != 3 || s.Attempt() != 1 {
		t.Errorf("level %d attempt %d, want 3 and 1", s.Level(), s.Attempt())
	}
	if s.World().Spawners() != 3 {
		t.Errorf("spawners = %d, want 3", s.World().Spawners())
	}
	perf := s.Perf().Stats()
	if perf.Ticks != 2 || perf.Outcomes[telemetry.OutcomeLevelFinished] != 2 {
		t.Errorf("perf ticks %d outcomes %v, want 2 level finishes", perf.Ticks, perf.Outcomes)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := readLines(t, filepath.Join(dir, "levels.csv"))
	want := []string{
		"level,attempt,outcome,ticks,score,lives",
		"1,1,finished,1,0,3",
		"2,1,finished,1,0,3",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("levels.csv =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}

func TestDeathsEndInGameOver(t *testing.T) {
	cfg := config.Default()
	// One fast seeker walks straight at a fragile player
	cfg.Player.MaxHealth = 1
	cfg.Spawner.Quota = config.SpeciesSet[int]{Seeker: 1}
	cfg.Spawner.EmitChance = 1
	cfg.Organisms.Species.Seeker.Step = 8
	cfg.Level.DebrisBase = 0
	cfg.Level.DebrisPerLevel = 0
	cfg.Level.MinDebris = 0
	dir := t.TempDir()

	s, err := New(cfg, nil, Options{Seed: 9, OutputDir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Run(5000)

	if !s.Over() {
		t.Fatalf("game not over after %d ticks, lives %d", s.World().TickCount(), s.Lives())
	}
	if s.Lives() != 0 || s.Level() != 1 {
		t.Errorf("lives %d level %d, want 0 and 1", s.Lives(), s.Level())
	}
	if s.SoundCount(game.SoundPlayerDied) < 3 {
		t.Errorf("player died %d times, want at least 3", s.SoundCount(game.SoundPlayerDied))
	}

	// Stepping after game over is inert
	tick := s.World().TickCount()
	if got := s.Step(); got != game.PlayerDied || s.World().TickCount() != tick {
		t.Errorf("step after game over ran a tick")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	lines := readLines(t, filepath.Join(dir, "levels.csv"))
	died := 0
	for _, line := range lines[1:] {
		if strings.Contains(line, ",died,") {
			died++
		}
	}
	if died != s.Attempt() {
		t.Errorf("%d died rows, want one per attempt (%d)", died, s.Attempt())
	}
}

func TestAutopilot(t *testing.T) {
	t.Run("always idle", func(t *testing.T) {
		a := NewAutopilot(1, 1)
		for i := 0; i < 100; i++ {
			if _, ok := a.PendingKey(); ok {
				t.Fatal("idle autopilot pressed a key")
			}
		}
	})

	t.Run("never idle", func(t *testing.T) {
		a := NewAutopilot(1, 0)
		seen := map[game.Key]bool{}
		for i := 0; i < 200; i++ {
			k, ok := a.PendingKey()
			if !ok {
				t.Fatal("busy autopilot idled")
			}
			if k >= game.NumKeys {
				t.Fatalf("key %d out of range", k)
			}
			seen[k] = true
		}
		if len(seen) != int(game.NumKeys) {
			t.Errorf("pressed %d distinct keys, want %d", len(seen), game.NumKeys)
		}
	})

	t.Run("deterministic per seed", func(t *testing.T) {
		a, b := NewAutopilot(7, 0.5), NewAutopilot(7, 0.5)
		for i := 0; i < 50; i++ {
			ka, oka := a.PendingKey()
			kb, okb := b.PendingKey()
			if ka != kb || oka != okb {
				t.Fatalf("draw %d differs", i)
			}
		}
	})
}
