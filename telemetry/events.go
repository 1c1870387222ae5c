// Package telemetry provides per-window game statistics, bookmarks, CSV output
// and tick phase timing.
package telemetry

import "github.com/pthm-cable/petri/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventBirth EventType = iota
	EventDeath
	EventShot
	EventPickup
	EventPlayerHit
)

// Event represents a single telemetry event.
type Event struct {
	Type EventType
	Tick int
	Kind components.Kind

	// Damage taken for EventPlayerHit
	Amount int
}

// NewBirthEvent creates an organism birth event.
func NewBirthEvent(tick int, kind components.Kind) Event {
	return Event{Type: EventBirth, Tick: tick, Kind: kind}
}

// NewDeathEvent creates an organism death event.
func NewDeathEvent(tick int, kind components.Kind) Event {
	return Event{Type: EventDeath, Tick: tick, Kind: kind}
}

// NewShotEvent creates a weapon discharge event for a projectile kind.
func NewShotEvent(tick int, kind components.Kind) Event {
	return Event{Type: EventShot, Tick: tick, Kind: kind}
}

// NewPickupEvent creates an event for a pickup or hazard touching the player.
func NewPickupEvent(tick int, kind components.Kind) Event {
	return Event{Type: EventPickup, Tick: tick, Kind: kind}
}

// NewPlayerHitEvent creates a player damage event.
func NewPlayerHitEvent(tick int, source components.Kind, damage int) Event {
	return Event{Type: EventPlayerHit, Tick: tick, Kind: source, Amount: damage}
}
