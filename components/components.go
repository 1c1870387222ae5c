// Package components defines ECS components for the simulation.
package components

// Kind identifies one entity species. The set is closed; behavior and
// capabilities are looked up by Kind rather than by type assertion.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindWanderer
	KindStalker
	KindSeeker
	KindHealthPickup
	KindFlamePickup
	KindLifePickup
	KindHazard
	KindDebris
	KindFlame
	KindSpray
	KindFood
	KindSpawner

	NumKinds
)

// Caps is a set of capability flags shared by all entities of a Kind.
type Caps uint16

const (
	CapDamageable Caps = 1 << iota // Eligible for destruction by weapons
	CapHealth                      // Carries a Health component
	CapBlocker                     // Obstructs organism movement
	CapProjectile                  // Travels and damages on contact
	CapEdible                      // Consumable by organisms
	CapSpawner                     // Emits organisms
	CapOrganism                    // Hostile organism, counted toward level completion
	CapPickup                      // Applies an effect on player contact
)

var kindCaps = [NumKinds]Caps{
	KindPlayer:       CapDamageable | CapHealth,
	KindWanderer:     CapDamageable | CapHealth | CapOrganism,
	KindStalker:      CapDamageable | CapHealth | CapOrganism,
	KindSeeker:       CapDamageable | CapHealth | CapOrganism,
	KindHealthPickup: CapDamageable | CapPickup,
	KindFlamePickup:  CapDamageable | CapPickup,
	KindLifePickup:   CapDamageable | CapPickup,
	KindHazard:       CapDamageable | CapPickup,
	KindDebris:       CapDamageable | CapBlocker,
	KindFlame:        CapProjectile,
	KindSpray:        CapProjectile,
	KindFood:         CapEdible,
	KindSpawner:      CapSpawner,
}

// Caps returns the capability flags of the kind.
func (k Kind) Caps() Caps {
	if k >= NumKinds {
		return 0
	}
	return kindCaps[k]
}

// Is reports whether the kind has all of the given capabilities.
func (k Kind) Is(c Caps) bool {
	return k.Caps()&c == c
}

// Species indexes the three hostile organism species.
type Species uint8

const (
	SpeciesWanderer Species = iota // Low aggression, grazes food
	SpeciesStalker                 // Charges the player at close range
	SpeciesSeeker                  // Pursues the player across the arena

	NumSpecies
)

// Kind returns the entity kind of the species.
func (s Species) Kind() Kind {
	switch s {
	case SpeciesStalker:
		return KindStalker
	case SpeciesSeeker:
		return KindSeeker
	default:
		return KindWanderer
	}
}

// SpeciesOf returns the species of an organism kind.
// ok is false for kinds that are not organisms.
func SpeciesOf(k Kind) (Species, bool) {
	switch k {
	case KindWanderer:
		return SpeciesWanderer, true
	case KindStalker:
		return SpeciesStalker, true
	case KindSeeker:
		return SpeciesSeeker, true
	}
	return 0, false
}

// Blocker tag component for movement-blocking entities.
type Blocker struct{}

// Edible tag component for consumables.
type Edible struct{}
