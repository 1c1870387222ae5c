// Package systems provides the geometry, sampling and scoring rules the
// simulation engine is built from. Everything here is pure: state lives in game.
package systems

import "math"

// Angle normalization functions

// NormalizeHeading wraps a heading in degrees to [0, 360).
func NormalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance functions

// distanceSq returns the squared distance between two points.
func distanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(distanceSq(x1, y1, x2, y2))
}

// Overlaps reports whether two sprites centered at the given points overlap:
// their centers are strictly closer than one sprite width.
func Overlaps(x1, y1, x2, y2, spriteWidth float64) bool {
	return Distance(x1, y1, x2, y2) < spriteWidth
}

// MoveAngle returns the point dist away from (x, y) along heading deg.
// Negative dist moves backwards.
func MoveAngle(x, y, deg, dist float64) (float64, float64) {
	rad := radians(deg)
	return x + dist*math.Cos(rad), y + dist*math.Sin(rad)
}

// DirectionTo returns the heading in degrees from (x, y) toward (tx, ty).
// Targets on the same column or row resolve to exact cardinal headings.
func DirectionTo(x, y, tx, ty float64) float64 {
	switch {
	case tx == x:
		if ty > y {
			return 90
		}
		return 270
	case ty == y:
		if tx > x {
			return 0
		}
		return 180
	}

	theta := math.Atan2(math.Abs(ty-y), math.Abs(tx-x))
	switch {
	case tx < x && ty > y:
		theta = math.Pi - theta
	case tx < x && ty < y:
		theta = math.Pi + theta
	case tx > x && ty < y:
		theta = 2*math.Pi - theta
	}
	return NormalizeHeading(theta * 180 / math.Pi)
}
