package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// World state at window end
	Level     int `csv:"level"`
	Score     int `csv:"score"`
	Organisms int `csv:"organisms"`
	Spawners  int `csv:"spawners"`
	Health    int `csv:"health"`

	// Organism events during window
	WandererBirths int `csv:"wanderer_births"`
	StalkerBirths  int `csv:"stalker_births"`
	SeekerBirths   int `csv:"seeker_births"`
	WandererDeaths int `csv:"wanderer_deaths"`
	StalkerDeaths  int `csv:"stalker_deaths"`
	SeekerDeaths   int `csv:"seeker_deaths"`

	// Player events during window
	SpraysFired int `csv:"sprays_fired"`
	FlamesFired int `csv:"flames_fired"`
	Pickups     int `csv:"pickups"`
	Hazards     int `csv:"hazards"`
	PlayerHits  int `csv:"player_hits"`
	DamageTaken int `csv:"damage_taken"`

	// Organism population over the window's ticks
	OrganismsMean float64 `csv:"organisms_mean"`
	OrganismsStd  float64 `csv:"organisms_std"`
}

// Births returns total organism births in the window.
func (s WindowStats) Births() int {
	return s.WandererBirths + s.StalkerBirths + s.SeekerBirths
}

// Deaths returns total organism deaths in the window.
func (s WindowStats) Deaths() int {
	return s.WandererDeaths + s.StalkerDeaths + s.SeekerDeaths
}

// PopulationStats returns the mean and sample standard deviation of values.
// Fewer than two samples have zero deviation.
func PopulationStats(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("level", s.Level),
		slog.Int("score", s.Score),
		slog.Int("organisms", s.Organisms),
		slog.Int("spawners", s.Spawners),
		slog.Int("health", s.Health),
		slog.Int("births", s.Births()),
		slog.Int("deaths", s.Deaths()),
		slog.Int("sprays_fired", s.SpraysFired),
		slog.Int("flames_fired", s.FlamesFired),
		slog.Int("pickups", s.Pickups),
		slog.Int("hazards", s.Hazards),
		slog.Int("player_hits", s.PlayerHits),
		slog.Int("damage_taken", s.DamageTaken),
		slog.Float64("organisms_mean", s.OrganismsMean),
		slog.Float64("organisms_std", s.OrganismsStd),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

// LevelRecord is one row of levels.csv: how a level attempt ended.
type LevelRecord struct {
	Level   int    `csv:"level"`
	Attempt int    `csv:"attempt"`
	Outcome string `csv:"outcome"`
	Ticks   int    `csv:"ticks"`
	Score   int    `csv:"score"`
	Lives   int    `csv:"lives"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r LevelRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("level", r.Level),
		slog.Int("attempt", r.Attempt),
		slog.String("outcome", r.Outcome),
		slog.Int("ticks", r.Ticks),
		slog.Int("score", r.Score),
		slog.Int("lives", r.Lives),
	)
}
