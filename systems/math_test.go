package systems

import (
	"math"
	"testing"
)

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{365, 5},
		{-5, 355},
		{-360, 0},
		{725, 5},
	}

	for _, tt := range tests {
		if got := NormalizeHeading(tt.in); got != tt.want {
			t.Errorf("NormalizeHeading(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOverlapsIsStrictAndSymmetric(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           bool
	}{
		{"same point", 10, 10, 10, 10, true},
		{"just inside", 0, 0, 7.99, 0, true},
		{"exactly one width", 0, 0, 8, 0, false},
		{"diagonal inside", 0, 0, 5, 5, true},
		{"diagonal outside", 0, 0, 6, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Overlaps(tt.x1, tt.y1, tt.x2, tt.y2, 8)
			ba := Overlaps(tt.x2, tt.y2, tt.x1, tt.y1, 8)
			if ab != tt.want || ba != tt.want {
				t.Errorf("Overlaps = %v/%v, want %v", ab, ba, tt.want)
			}
		})
	}
}

func TestDirectionTo(t *testing.T) {
	tests := []struct {
		name   string
		tx, ty float64
		want   float64
	}{
		{"east", 10, 0, 0},
		{"north", 0, 10, 90},
		{"west", -10, 0, 180},
		{"south", 0, -10, 270},
		{"same point", 0, 0, 270},
		{"northeast", 10, 10, 45},
		{"northwest", -10, 10, 135},
		{"southwest", -10, -10, 225},
		{"southeast", 10, -10, 315},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DirectionTo(0, 0, tt.tx, tt.ty)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DirectionTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveAngle(t *testing.T) {
	tests := []struct {
		deg, dist    float64
		wantX, wantY float64
	}{
		{0, 3, 13, 10},
		{90, 3, 10, 13},
		{180, 3, 7, 10},
		{270, 2, 10, 8},
		{0, -5, 5, 10},
	}

	for _, tt := range tests {
		x, y := MoveAngle(10, 10, tt.deg, tt.dist)
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("MoveAngle(%v, %v) = (%v, %v), want (%v, %v)", tt.deg, tt.dist, x, y, tt.wantX, tt.wantY)
		}
	}
}
