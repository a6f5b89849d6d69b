package cube

import (
	"github.com/glehmann/skeletonize/connectivity"
)

// Mask is a sparse boolean labeling of the 3ⁿ unit cube, keyed by
// connectivity.OffsetToInt code. Absence of a key, or a false value, both
// mean "not in the object under consideration"; the center code (the all-
// zero offset) must never be set to true by construction, since the
// simplicity test always excludes the center voxel.
type Mask map[int]bool

// Set records whether the cube position at code is part of the object
// being measured.
func (m Mask) Set(code int, present bool) {
	if present {
		m[code] = true
	} else {
		delete(m, code)
	}
}

// Has reports whether code is part of the object.
func (m Mask) Has(code int) bool {
	return m[code]
}

// Count returns the number of connected components of mask under
// connectivity c, restricted so that two masked cells p, q are considered
// connected only if ucn.Allowed(p, q-p) holds (ucn must have been built
// from c and its paired neighborhood connectivity). Implemented with
// union-find over the masked codes: each qualifying (p1,p2) pair merges
// p1's component with (p1+p2)'s.
func Count(mask Mask, c *connectivity.Connectivity, ucn *UnitCubeNeighbors) int {
	n := c.N()

	parent := make(map[int]int, len(mask))
	rank := make(map[int]int, len(mask))
	for code, present := range mask {
		if present {
			parent[code] = code
		}
	}

	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	for p1Code := range parent {
		p1 := connectivity.IntToOffset(n, p1Code)
		for _, p2 := range c.Neighbors() {
			if !ucn.Allowed(p1, p2) {
				continue
			}
			q := p1.Add(p2)
			qCode := connectivity.OffsetToInt(q)
			if !mask.Has(qCode) {
				continue
			}
			union(p1Code, qCode)
		}
	}

	roots := make(map[int]bool, len(parent))
	for code := range parent {
		roots[find(code)] = true
	}
	return len(roots)
}
