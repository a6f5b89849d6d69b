package distance

import (
	"math"

	"github.com/glehmann/skeletonize/connectivity"
	"github.com/glehmann/skeletonize/voxel"
)

// unreached is the initial distance assigned to every foreground voxel
// before either sweep runs. It is kept well below uint32's range ceiling so
// that the "+1" relaxation step can never overflow.
const unreached = math.MaxUint32 / 2

// Chessboard computes the chebyshev (chessboard) distance from every
// foreground voxel to the nearest in-domain background voxel (positions
// outside the domain are not treated as background), using the classic
// two-pass sweep: a forward raster pass
// relaxes each voxel against its already-visited neighbors, then a backward
// pass relaxes it against the neighbors visited after it. Two passes over
// the full chebyshev neighborhood (connectivity.New(n, 0)) are exact for
// this metric, the same way a chamfer distance transform is exact for its
// own weighted metric.
//
// The returned voxel.DenseOrdering[uint32] is ready to drive Run: lower
// values (background, and foreground voxels near the border) are visited
// first under the default ascending comparator.
// fg is the foreground sentinel value; every other pixel value is treated
// as background.
func Chessboard[P comparable](img voxel.Image[P], fg P) (*voxel.DenseOrdering[uint32], error) {
	if img == nil {
		return nil, ErrMissingImage
	}

	box := img.Domain()
	n := box.Dim()
	conn, err := connectivity.New(n, 0) // full chebyshev neighborhood
	if err != nil {
		return nil, err
	}
	causal, anti := splitOffsets(conn.Neighbors())

	ord := voxel.NewDenseOrdering[uint32](box)
	forEachAscending(box, func(idx voxel.Index) {
		if img.At(idx) == fg {
			ord.Set(idx, unreached)
		} else {
			ord.Set(idx, 0)
		}
	})

	forEachAscending(box, func(idx voxel.Index) {
		relax(img, ord, idx, fg, causal)
	})
	forEachDescending(box, func(idx voxel.Index) {
		relax(img, ord, idx, fg, anti)
	})

	return ord, nil
}

func relax[P comparable](img voxel.Image[P], ord *voxel.DenseOrdering[uint32], idx voxel.Index, fg P, offsets []voxel.Index) {
	if img.At(idx) != fg {
		return
	}
	best := ord.At(idx)
	for _, off := range offsets {
		q := idx.Add(off)
		if !img.InBounds(q) {
			continue
		}
		if cand := ord.At(q) + 1; cand < best {
			best = cand
		}
	}
	ord.Set(idx, best)
}

// splitOffsets partitions a connectivity's neighbor offsets into the
// "causal" half (lexicographically negative: already visited by an
// ascending raster sweep) and the "anti-causal" half (lexicographically
// positive: already visited by a descending sweep). The two halves are
// mirror images of each other, since offsets come in +/- pairs.
func splitOffsets(offsets []voxel.Index) (causal, anti []voxel.Index) {
	for _, off := range offsets {
		if isCausal(off) {
			causal = append(causal, off)
		} else {
			anti = append(anti, off)
		}
	}
	return causal, anti
}

// isCausal reports whether off precedes the zero offset in row-major
// (first axis slowest) lexicographic order: the first non-zero coordinate,
// read from axis 0, is negative.
func isCausal(off voxel.Index) bool {
	for _, c := range off {
		if c != 0 {
			return c < 0
		}
	}
	return false
}

// forEachAscending walks every index of box in row-major order (last axis
// fastest), calling fn on each.
func forEachAscending(box voxel.Box, fn func(voxel.Index)) {
	n := box.Dim()
	if n == 0 {
		return
	}
	idx := box.Origin.Clone()
	for {
		fn(idx.Clone())
		a := n - 1
		for a >= 0 {
			idx[a]++
			if idx[a] < box.Origin[a]+box.Size[a] {
				break
			}
			idx[a] = box.Origin[a]
			a--
		}
		if a < 0 {
			return
		}
	}
}

// forEachDescending walks every index of box in reverse row-major order,
// the mirror image of forEachAscending.
func forEachDescending(box voxel.Box, fn func(voxel.Index)) {
	n := box.Dim()
	if n == 0 {
		return
	}
	idx := make(voxel.Index, n)
	for a := 0; a < n; a++ {
		idx[a] = box.Origin[a] + box.Size[a] - 1
	}
	for {
		fn(idx.Clone())
		a := n - 1
		for a >= 0 {
			idx[a]--
			if idx[a] >= box.Origin[a] {
				break
			}
			idx[a] = box.Origin[a] + box.Size[a] - 1
			a--
		}
		if a < 0 {
			return
		}
	}
}
