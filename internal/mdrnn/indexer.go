package mdrnn

import (
	"github.com/grid-ml/gridrnn/internal/tensor"
)

// gridIndexer enumerates the cells of a spatial grid in dependency order
// and answers predecessor queries under a given scan Direction.
//
// The dependency relation is single-axis: cell c depends, per axis k, on
// the adjacent cell whose index on axis k is one step "behind" the scan
// direction. A cell on the first-visited index of an axis has no
// predecessor there and is a boundary cell for that axis.
type gridIndexer struct {
	shape tensor.Shape // spatial extents only, no batch or feature axis
	dir   Direction
}

func newGridIndexer(shape tensor.Shape, dir Direction) *gridIndexer {
	return &gridIndexer{shape: shape.Clone(), dir: dir}
}

// Predecessor returns the in-bounds predecessor coordinate of coord along
// the given axis, or ok=false when coord is a boundary cell on that axis.
// Out-of-range neighbors are never clamped; the boundary case is explicit.
func (g *gridIndexer) Predecessor(coord []int, axis int) ([]int, bool) {
	if g.dir.Ascending(axis) {
		if coord[axis] == 0 {
			return nil, false
		}
	} else {
		if coord[axis] == g.shape[axis]-1 {
			return nil, false
		}
	}

	pred := append([]int(nil), coord...)
	pred[axis] -= g.dir.Sign(axis)
	return pred, true
}

// Terminal returns the coordinate visited last: per axis, the maximum
// index when ascending and index 0 when descending.
func (g *gridIndexer) Terminal() []int {
	coord := make([]int, len(g.shape))
	for k, size := range g.shape {
		if g.dir.Ascending(k) {
			coord[k] = size - 1
		}
	}
	return coord
}

// level is the directed distance of coord from the scan's start corner:
// the sum, over all axes, of how many steps the scan has taken on that
// axis to reach coord. Every predecessor of a cell sits exactly one
// level below it, so cells within a level are mutually independent.
func (g *gridIndexer) level(coord []int) int {
	lvl := 0
	for k, c := range coord {
		if g.dir.Ascending(k) {
			lvl += c
		} else {
			lvl += g.shape[k] - 1 - c
		}
	}
	return lvl
}

// Wavefronts groups all grid coordinates by level, in ascending level
// order. Visiting the groups in order (cells within a group in any
// order) is a valid topological order of the predecessor relation; the
// final group holds only the terminal coordinate.
func (g *gridIndexer) Wavefronts() [][][]int {
	rank := len(g.shape)
	maxLevel := 0
	for _, size := range g.shape {
		maxLevel += size - 1
	}

	levels := make([][][]int, maxLevel+1)
	total := g.shape.NumElements()
	coord := make([]int, rank)

	for i := 0; i < total; i++ {
		tmp := i
		for j := rank - 1; j >= 0; j-- {
			coord[j] = tmp % g.shape[j]
			tmp /= g.shape[j]
		}
		lvl := g.level(coord)
		levels[lvl] = append(levels[lvl], append([]int(nil), coord...))
	}

	return levels
}
