package systems

import (
	"math"

	"github.com/pthm-cable/petri/config"
)

// RNG is the host-provided uniform integer source.
type RNG interface {
	// RandInt returns a uniform integer in [lo, hi].
	RandInt(lo, hi int) int
}

// Arena holds the circular play area geometry.
type Arena struct {
	CenterX, CenterY float64
	Radius           float64
	InteriorRadius   float64
	SpriteWidth      float64
}

// NewArena builds the arena from config.
func NewArena(cfg *config.Config) Arena {
	return Arena{
		CenterX:        cfg.Derived.CenterX,
		CenterY:        cfg.Derived.CenterY,
		Radius:         cfg.Arena.Radius,
		InteriorRadius: cfg.Arena.InteriorRadius,
		SpriteWidth:    cfg.Arena.SpriteWidth,
	}
}

// HalfSprite returns the blocker clearance radius.
func (a Arena) HalfSprite() float64 {
	return a.SpriteWidth / 2
}

// Contains reports whether a point is within the arena radius of the center.
func (a Arena) Contains(x, y float64) bool {
	return Distance(x, y, a.CenterX, a.CenterY) <= a.Radius
}

// PlayerStart returns the player's spawn point (midpoint of the left edge)
// and default facing, which points at the center.
func (a Arena) PlayerStart() (x, y, heading float64) {
	return a.CenterX - a.Radius, a.CenterY, 0
}

// Orbit moves a boundary point around the center by delta degrees: step in
// to the center along heading, turn, step back out. The heading keeps pointing
// at the center.
func (a Arena) Orbit(x, y, heading, delta float64) (nx, ny, nh float64) {
	cx, cy := MoveAngle(x, y, heading, a.Radius)
	nh = NormalizeHeading(heading + delta)
	nx, ny = MoveAngle(cx, cy, nh, -a.Radius)
	return nx, ny, nh
}

// InteriorPoint samples a point within the interior placement radius.
func (a Arena) InteriorPoint(rng RNG) (x, y float64) {
	angle := float64(rng.RandInt(0, 100)) / 100 * 2 * math.Pi
	r := math.Sqrt(float64(rng.RandInt(0, 100))/100) * a.InteriorRadius
	return a.CenterX + r*math.Cos(angle), a.CenterY + r*math.Sin(angle)
}

// BoundaryPoint samples a point on the arena boundary circle.
func (a Arena) BoundaryPoint(rng RNG) (x, y float64) {
	deg := float64(rng.RandInt(0, 359))
	return MoveAngle(a.CenterX, a.CenterY, deg, a.Radius)
}

// OffspringPoint returns where an organism at (x, y) places its offspring:
// half a sprite width toward the center on each axis, unchanged on an axis
// where the parent sits exactly on the center line.
func (a Arena) OffspringPoint(x, y float64) (float64, float64) {
	half := a.HalfSprite()
	return towardCenter(x, a.CenterX, half), towardCenter(y, a.CenterY, half)
}

func towardCenter(v, center, step float64) float64 {
	switch {
	case v < center:
		return v + step
	case v > center:
		return v - step
	}
	return v
}
