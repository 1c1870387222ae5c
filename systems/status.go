package systems

import "fmt"

// StatusLine holds the values shown in the one-line status text.
type StatusLine struct {
	Score  int
	Level  int
	Lives  int
	Health int
	Sprays int
	Flames int
}

// String formats the status line for the host's status sink.
func (s StatusLine) String() string {
	return fmt.Sprintf("Score: %06d Level: %2d Lives: %1d Health: %3d Sprays: %2d Flames: %2d",
		s.Score, s.Level, s.Lives, s.Health, s.Sprays, s.Flames)
}
