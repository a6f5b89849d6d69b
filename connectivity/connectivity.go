package connectivity

import (
	"fmt"
	"sort"

	"github.com/glehmann/skeletonize/voxel"
)

// Connectivity describes the k-adjacency of a voxel in ℤⁿ: the immutable,
// sorted table of non-zero offsets in {-1,0,+1}ⁿ whose number of non-zero
// coordinates is at most (n-k). Values are created once via New or
// NewDefault and never mutated afterwards; the table is safe to share
// across goroutines.
type Connectivity struct {
	n, k      int
	neighbors []voxel.Index
	byCode    map[int]bool // offsetToInt(offset) -> true, for O(1) membership tests
}

// New builds the Connectivity for the explicit descriptor (n,k).
func New(n, k int) (*Connectivity, error) {
	if err := validate(n, k); err != nil {
		return nil, err
	}
	return build(n, k), nil
}

// NewDefault builds a Connectivity from the process-wide global default
// (n,k) (see GlobalDefault/SetGlobalDefault). Reading the default for the
// first time freezes it: subsequent calls to SetGlobalDefault return
// ErrGlobalDefaultFrozen.
func NewDefault() *Connectivity {
	n, k := GlobalDefault()
	return build(n, k)
}

func validate(n, k int) error {
	if n < 1 || k < 0 || k >= n {
		return fmt.Errorf("%w: got n=%d, k=%d", ErrInvalidDescriptor, n, k)
	}
	return nil
}

// build enumerates every offset in {-1,0,+1}ⁿ \ {0} with at most (n-k)
// non-zero coordinates, sorted by its offsetToInt code for determinism.
func build(n, k int) *Connectivity {
	maxNonZero := n - k
	var offsets []voxel.Index
	digits := make([]int, n)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			nz := 0
			for _, d := range digits {
				if d != 0 {
					nz++
				}
			}
			if nz > 0 && nz <= maxNonZero {
				offsets = append(offsets, digitsToOffset(digits))
			}
			return
		}
		for _, d := range [...]int{0, 1, -1} {
			digits[pos] = d
			rec(pos + 1)
		}
		digits[pos] = 0
	}
	rec(0)

	sort.Slice(offsets, func(i, j int) bool {
		return OffsetToInt(offsets[i]) < OffsetToInt(offsets[j])
	})

	byCode := make(map[int]bool, len(offsets))
	for _, off := range offsets {
		byCode[OffsetToInt(off)] = true
	}

	return &Connectivity{n: n, k: k, neighbors: offsets, byCode: byCode}
}

// N returns the dimension of the space.
func (c *Connectivity) N() int { return c.n }

// K returns the cell dimension: adjacency requires sharing a cell of
// dimension >= K.
func (c *Connectivity) K() int { return c.k }

// Neighbors returns the immutable, sorted table of neighbor offsets. The
// returned slice must not be mutated by the caller.
func (c *Connectivity) Neighbors() []voxel.Index {
	return c.neighbors
}

// NumberOfNeighbors returns len(Neighbors()), matching the closed-form
// count below for validation purposes.
func (c *Connectivity) NumberOfNeighbors() int {
	return len(c.neighbors)
}

// IsInNeighborhood reports whether off is one of c's neighbor offsets.
func (c *Connectivity) IsInNeighborhood(off voxel.Index) bool {
	if len(off) != c.n {
		return false
	}
	return c.byCode[OffsetToInt(off)]
}

// AreNeighbors reports whether p and q are c-adjacent, i.e. whether q-p is
// one of c's neighbor offsets.
func (c *Connectivity) AreNeighbors(p, q voxel.Index) bool {
	return c.IsInNeighborhood(q.Sub(p))
}

// NumberOfNeighbors computes the closed-form neighbor count for an
// (n,k)-connectivity without building the full offset table:
//
//	numberOfNeighbors(n, k) = Σ_{j=1..n-k} C(n, j) · 2^j
//
// Used to cross-check Connectivity.NumberOfNeighbors in tests.
func NumberOfNeighbors(n, k int) int {
	total := 0
	for j := 1; j <= n-k; j++ {
		total += binomial(n, j) * pow2(j)
	}
	return total
}

func binomial(n, j int) int {
	if j < 0 || j > n {
		return 0
	}
	result := 1
	for i := 0; i < j; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

func pow2(j int) int {
	return 1 << uint(j)
}

// digitsToOffset copies build's per-axis values (already coordinates in
// {-1,0,+1}, not base-3 digits) into an Index.
func digitsToOffset(digits []int) voxel.Index {
	off := make(voxel.Index, len(digits))
	for i, d := range digits {
		off[i] = digitToCoord(d)
	}
	return off
}

func digitToCoord(digit int) int {
	switch digit {
	case 0:
		return 0
	case 1:
		return 1
	case -1:
		return -1
	default:
		panic(fmt.Sprintf("connectivity: invalid digit %d", digit))
	}
}

// NumberOfCubeCodes returns 3ⁿ, the number of distinct offset codes (the
// size of the full unit-cube codespace, center included) for dimension n.
func NumberOfCubeCodes(n int) int {
	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}
	return total
}

// IntToOffset decodes i in [0, 3ⁿ) into an Index of dimension n, using
// base-3 digits with coordinate 0 -> digit 0, +1 -> digit 1, -1 -> digit 2.
// This is the exact inverse of OffsetToInt.
func IntToOffset(n, i int) voxel.Index {
	off := make(voxel.Index, n)
	for a := 0; a < n; a++ {
		digit := i % 3
		i /= 3
		off[a] = coordFromDigit(digit)
	}
	return off
}

func coordFromDigit(digit int) int {
	switch digit {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return -1
	default:
		panic(fmt.Sprintf("connectivity: invalid base-3 digit %d", digit))
	}
}

// OffsetToInt encodes an Index in {-1,0,+1}ⁿ as an integer in [0, 3ⁿ), the
// exact inverse of IntToOffset.
func OffsetToInt(off voxel.Index) int {
	code := 0
	mul := 1
	for _, c := range off {
		code += digitFromCoord(c) * mul
		mul *= 3
	}
	return code
}

func digitFromCoord(c int) int {
	switch c {
	case 0:
		return 0
	case 1:
		return 1
	case -1:
		return 2
	default:
		panic(fmt.Sprintf("connectivity: coordinate %d is not in {-1,0,1}", c))
	}
}
