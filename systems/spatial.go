package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
)

// SpatialGrid buckets static entities (blockers) by cell for radius lookups.
// Entities are never moved once inserted; dead ones are filtered by the caller
// and dropped on the next Rebuild.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]ecs.Entity
}

// NewSpatialGrid creates a grid covering a width x height area.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]ecs.Entity, cols*rows)
	for i := range cells {
		cells[i] = make([]ecs.Entity, 0, 4)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all entities from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity at the given position.
func (g *SpatialGrid) Insert(e ecs.Entity, x, y float64) {
	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], e)
}

// Len returns the number of entities in the grid.
func (g *SpatialGrid) Len() int {
	n := 0
	for _, c := range g.cells {
		n += len(c)
	}
	return n
}

// AnyWithin reports whether keep accepts some entity whose position lies
// within radius (inclusive) of (x, y).
func (g *SpatialGrid) AnyWithin(x, y, radius float64, posMap *ecs.Map1[components.Position], keep func(ecs.Entity) bool) bool {
	span := int(radius/g.cellSize) + 1
	col, row := g.cellCoords(x, y)
	radiusSq := radius * radius

	for dr := -span; dr <= span; dr++ {
		r := row + dr
		if r < 0 || r >= g.rows {
			continue
		}
		for dc := -span; dc <= span; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			for _, e := range g.cells[r*g.cols+c] {
				if !keep(e) {
					continue
				}
				pos := posMap.Get(e)
				if distanceSq(x, y, pos.X, pos.Y) <= radiusSq {
					return true
				}
			}
		}
	}
	return false
}

func (g *SpatialGrid) cellCoords(x, y float64) (col, row int) {
	col = int(x / g.cellSize)
	row = int(y / g.cellSize)

	// Clamp to valid range
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

// cellIndex returns the flat index for a world position.
func (g *SpatialGrid) cellIndex(x, y float64) int {
	col, row := g.cellCoords(x, y)
	return row*g.cols + col
}
