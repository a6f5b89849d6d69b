package topology

import (
	"github.com/glehmann/skeletonize/connectivity"
	"github.com/glehmann/skeletonize/cube"
	"github.com/glehmann/skeletonize/voxel"
)

// Tables precomputes everything the topological-number test needs for a
// fixed foreground connectivity: the dual background connectivity, the two
// neighborhood connectivities used to traverse the unit cube, and the
// resulting UnitCubeNeighbors tables. Build one Tables per foreground
// connectivity and reuse it across every voxel in an image; it holds no
// mutable state and is safe to share across goroutines.
type Tables struct {
	fg, bg       *connectivity.Connectivity
	ucnFg, ucnBg *cube.UnitCubeNeighbors
}

// NewTables derives the background and neighborhood connectivities from fg
// via connectivity.Background and connectivity.Neighborhood, and builds the
// unit-cube traversal tables for both.
func NewTables(fg *connectivity.Connectivity) *Tables {
	bg := connectivity.Background(fg)
	ncFg := connectivity.Neighborhood(fg)
	ncBg := connectivity.Neighborhood(bg)
	return &Tables{
		fg:    fg,
		bg:    bg,
		ucnFg: cube.New(fg, ncFg),
		ucnBg: cube.New(bg, ncBg),
	}
}

// Foreground returns the connectivity Tables was built from.
func (t *Tables) Foreground() *connectivity.Connectivity { return t.fg }

// Background returns the dual background connectivity.
func (t *Tables) Background() *connectivity.Connectivity { return t.bg }

// Numbers computes both the foreground and background topological numbers
// of x in img for foreground value f, always evaluating both masks. Use
// IsSimple instead when only the pass/fail outcome is needed, since it can
// skip the background count whenever the foreground one already fails.
func Numbers[P comparable](img voxel.Image[P], x voxel.Index, f P, t *Tables) (tFg, tBg int) {
	maskFg, maskBg := buildMasks(img, x, f)
	tFg = cube.Count(maskFg, t.fg, t.ucnFg)
	tBg = cube.Count(maskBg, t.bg, t.ucnBg)
	return tFg, tBg
}

// IsSimple reports whether x is a simple point of img under f: removing it
// changes neither the foreground's nor the background's number of connected
// components in its own neighborhood, i.e. Tfg == Tbg == 1. The background
// count is skipped whenever Tfg != 1, since the conjunction already fails.
func IsSimple[P comparable](img voxel.Image[P], x voxel.Index, f P, t *Tables) bool {
	maskFg, maskBg := buildMasks(img, x, f)
	if cube.Count(maskFg, t.fg, t.ucnFg) != 1 {
		return false
	}
	return cube.Count(maskBg, t.bg, t.ucnBg) == 1
}

// buildMasks extracts the 3ⁿ neighborhood of x from img and splits it into
// the foreground mask (cells equal to f) and its complement (the background
// mask), skipping the center code, which never participates in either mask.
func buildMasks[P comparable](img voxel.Image[P], x voxel.Index, f P) (fg, bg cube.Mask) {
	n := x.Dim()
	total := connectivity.NumberOfCubeCodes(n)
	fg = make(cube.Mask)
	bg = make(cube.Mask)
	for code := 1; code < total; code++ { // code 0 is always the center
		off := connectivity.IntToOffset(n, code)
		q := x.Add(off)
		if !img.InBounds(q) {
			continue
		}
		if img.At(q) == f {
			fg.Set(code, true)
		} else {
			bg.Set(code, true)
		}
	}
	return fg, bg
}
