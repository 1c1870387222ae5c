package components

// Position represents an entity's arena position (y-up).
type Position struct {
	X, Y float64
}

// Rotation represents an entity's facing.
type Rotation struct {
	Heading float64 // degrees, normalized to [0, 360)
}
