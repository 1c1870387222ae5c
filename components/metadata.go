package components

// String returns the display name for a Kind.
func (k Kind) String() string {
	names := KindNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// KindNames returns the display names for all kinds.
// The order matches the Kind constants.
func KindNames() []string {
	return []string{
		"Player",
		"Wanderer",
		"Stalker",
		"Seeker",
		"HealthPickup",
		"FlamePickup",
		"LifePickup",
		"Hazard",
		"Debris",
		"Flame",
		"Spray",
		"Food",
		"Spawner",
	}
}

// String returns the display name for a Species.
func (s Species) String() string {
	return s.Kind().String()
}

// Glyph returns the rune used to draw the kind in text frontends.
func (k Kind) Glyph() rune {
	switch k {
	case KindPlayer:
		return '@'
	case KindWanderer:
		return 'w'
	case KindStalker:
		return 's'
	case KindSeeker:
		return 'e'
	case KindHealthPickup:
		return '+'
	case KindFlamePickup:
		return 'f'
	case KindLifePickup:
		return 'L'
	case KindHazard:
		return 'x'
	case KindDebris:
		return '#'
	case KindFlame:
		return '*'
	case KindSpray:
		return '~'
	case KindFood:
		return '.'
	case KindSpawner:
		return 'O'
	}
	return '?'
}
