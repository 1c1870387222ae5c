package game

import "github.com/pthm-cable/petri/systems"

// Key is a logical player input.
type Key uint8

const (
	KeyRotateLeft Key = iota
	KeyRotateRight
	KeyPrimary   // spray
	KeySecondary // flamethrower
	NumKeys
)

func (k Key) String() string {
	switch k {
	case KeyRotateLeft:
		return "rotate_left"
	case KeyRotateRight:
		return "rotate_right"
	case KeyPrimary:
		return "primary"
	case KeySecondary:
		return "secondary"
	}
	return "unknown"
}

// Sound is a fire-and-forget audio event tag.
type Sound uint8

const (
	SoundPlayerHurt Sound = iota
	SoundPlayerDied
	SoundWandererHurt
	SoundWandererDied
	SoundStalkerHurt
	SoundStalkerDied
	SoundSeekerHurt
	SoundSeekerDied
	SoundSprayFired
	SoundFlameFired
	SoundOrganismBorn
	SoundPickupCollected
	NumSounds
)

var soundNames = [NumSounds]string{
	"player_hurt", "player_died",
	"wanderer_hurt", "wanderer_died",
	"stalker_hurt", "stalker_died",
	"seeker_hurt", "seeker_died",
	"spray_fired", "flame_fired",
	"organism_born", "pickup_collected",
}

func (s Sound) String() string {
	if s < NumSounds {
		return soundNames[s]
	}
	return "unknown"
}

// Status is the result of one tick.
type Status uint8

const (
	Continue Status = iota
	PlayerDied
	LevelFinished
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case PlayerDied:
		return "player_died"
	case LevelFinished:
		return "level_finished"
	}
	return "unknown"
}

// Input yields at most one pending key per call.
type Input interface {
	PendingKey() (Key, bool)
}

// RNG is a uniform integer source over an inclusive range.
type RNG = systems.RNG

// Ledger stores score, lives and level across ticks and levels.
type Ledger interface {
	AddScore(delta int)
	Score() int
	Lives() int
	IncLives()
	DecLives()
	Level() int
}

// StatusSink receives the one-line status text after every completed tick.
type StatusSink interface {
	SetStatus(text string)
}

// AudioSink receives sound events.
type AudioSink interface {
	PlaySound(s Sound)
}

// Host is everything the engine consumes from its owner.
type Host interface {
	Input
	RNG
	Ledger
	StatusSink
	AudioSink
}
