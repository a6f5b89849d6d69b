package cube

import (
	"github.com/glehmann/skeletonize/connectivity"
	"github.com/glehmann/skeletonize/voxel"
)

// UnitCubeNeighbors precomputes, for a primary connectivity C and a
// neighborhood connectivity C' (used to traverse the cube while computing
// topological numbers), a boolean table M[p1][p2] where both indices range
// over {-1,0,+1}ⁿ encoded via connectivity.OffsetToInt.
//
// M[p1][p2] is true iff p1 is a C'-neighbor of the cube's center, p2 is a
// C-neighbor offset, and p1+p2 still lies in the [-1,+1]ⁿ cube. Reproducing
// Malandain's (n,n') pairing, this table is built once and is immutable and
// safe to share across goroutines thereafter.
type UnitCubeNeighbors struct {
	allowed map[[2]int]bool
}

// New builds the UnitCubeNeighbors table for connectivity c, paired with
// neighborhood connectivity nc (see connectivity.Neighborhood for the
// default pairing).
func New(c, nc *connectivity.Connectivity) *UnitCubeNeighbors {
	allowed := make(map[[2]int]bool)
	for _, p1 := range nc.Neighbors() {
		code1 := connectivity.OffsetToInt(p1)
		for _, p2 := range c.Neighbors() {
			sum := p1.Add(p2)
			if !inUnitCube(sum) {
				continue
			}
			code2 := connectivity.OffsetToInt(p2)
			allowed[[2]int{code1, code2}] = true
		}
	}
	return &UnitCubeNeighbors{allowed: allowed}
}

// Allowed reports whether p2, applied as an offset from cube position p1,
// is a valid unit-cube traversal step: p1 is a neighborhood-connectivity
// neighbor of the center, p2 is a primary-connectivity neighbor offset, and
// p1+p2 remains inside the cube.
func (u *UnitCubeNeighbors) Allowed(p1, p2 voxel.Index) bool {
	return u.allowed[[2]int{connectivity.OffsetToInt(p1), connectivity.OffsetToInt(p2)}]
}

func inUnitCube(idx voxel.Index) bool {
	for _, c := range idx {
		if c < -1 || c > 1 {
			return false
		}
	}
	return true
}
