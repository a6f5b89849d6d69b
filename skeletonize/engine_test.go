package skeletonize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glehmann/skeletonize/connectivity"
	"github.com/glehmann/skeletonize/voxel"
)

func square2D(t *testing.T, w, h int) (*voxel.DenseImage[int], voxel.Box) {
	t.Helper()
	box, err := voxel.NewBox(voxel.Index{0, 0}, voxel.Index{w, h})
	require.NoError(t, err)
	return voxel.NewDenseImage[int](box, 0), box
}

func chessboardOrdering(t *testing.T, img *voxel.DenseImage[int], fg int) *voxel.DenseOrdering[int] {
	t.Helper()
	box := img.Domain()
	ord := voxel.NewDenseOrdering[int](box)
	// distance to the nearest in-domain background voxel, chessboard metric,
	// computed by brute force since these fixtures are tiny.
	n := box.Dim()
	var walk func(idx voxel.Index, axis int)
	var all []voxel.Index
	walk = func(idx voxel.Index, axis int) {
		if axis == n {
			cp := idx.Clone()
			all = append(all, cp)
			return
		}
		for v := box.Origin[axis]; v < box.Origin[axis]+box.Size[axis]; v++ {
			idx[axis] = v
			walk(idx, axis+1)
		}
	}
	walk(make(voxel.Index, n), 0)

	for _, idx := range all {
		if img.At(idx) != fg {
			ord.Set(idx, 0)
			continue
		}
		best := -1
		for _, bg := range all {
			if img.At(bg) == fg {
				continue
			}
			d := chessboard(idx, bg)
			if best == -1 || d < best {
				best = d
			}
		}
		if best == -1 {
			best = 0
		}
		ord.Set(idx, best)
	}
	return ord
}

func chessboard(a, b voxel.Index) int {
	max := 0
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

// S1: a single foreground voxel survives unchanged. It has no foreground
// neighbor, so it is not terminal, but its Tfg is 0 and it is never simple.
func TestRun_SinglePixelSurvives(t *testing.T) {
	img, _ := square2D(t, 5, 5)
	img.Set(voxel.Index{2, 2}, 1)

	ord := voxel.NewDenseOrdering[int](img.Domain())
	ord.Set(voxel.Index{2, 2}, 1)

	conn, err := connectivity.New(2, 0)
	require.NoError(t, err)

	require.NoError(t, Run[int, int](img, ord, conn, 1, 0))
	require.Equal(t, 1, img.At(voxel.Index{2, 2}))
}

// S2: a 2-voxel bar. Each voxel is the other's only foreground neighbor, so
// the default terminality rule (exactly one foreground neighbor) marks both
// as endpoints regardless of processing order: the bar survives intact,
// matching the terminal-preservation invariant (§8.4) rather than deleting
// either voxel.
func TestRun_TwoPixelBar_BothEndpointsSurvive(t *testing.T) {
	img, _ := square2D(t, 6, 6)
	img.Set(voxel.Index{2, 2}, 1)
	img.Set(voxel.Index{2, 3}, 1)

	ord := voxel.NewDenseOrdering[int](img.Domain())
	ord.Set(voxel.Index{2, 2}, 1)
	ord.Set(voxel.Index{2, 3}, 2)

	conn, err := connectivity.New(2, 0)
	require.NoError(t, err)

	require.NoError(t, Run[int, int](img, ord, conn, 1, 0))

	require.Equal(t, 1, img.At(voxel.Index{2, 2}))
	require.Equal(t, 1, img.At(voxel.Index{2, 3}))
}

// S3: a filled 3x3 square under 8-connectivity thins to its single center
// voxel when ordered by chessboard distance to background.
func TestRun_FilledSquareThinsToCenter(t *testing.T) {
	img, box := square2D(t, 7, 7)
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			img.Set(voxel.Index{x, y}, 1)
		}
	}
	_ = box
	ord := chessboardOrdering(t, img, 1)

	conn, err := connectivity.New(2, 0)
	require.NoError(t, err)

	require.NoError(t, Run[int, int](img, ord, conn, 1, 0))

	count := 0
	var survivor voxel.Index
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			idx := voxel.Index{x, y}
			if img.At(idx) == 1 {
				count++
				survivor = idx
			}
		}
	}
	require.Equal(t, 1, count)
	require.Equal(t, voxel.Index{3, 3}, survivor)
}

// S4: an annulus under 4-connectivity thins to a closed loop: every surviving
// voxel must have exactly two 8-connected neighbors among the survivors,
// confirming topology (a cycle, not a simply-connected blob) was preserved.
func TestRun_Annulus_PreservesLoopTopology(t *testing.T) {
	img, _ := square2D(t, 11, 11)
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			d := chessboard(voxel.Index{x, y}, voxel.Index{5, 5})
			if d >= 2 && d <= 4 {
				img.Set(voxel.Index{x, y}, 1)
			}
		}
	}
	ord := chessboardOrdering(t, img, 1)

	conn, err := connectivity.New(2, 1) // 4-connectivity
	require.NoError(t, err)

	require.NoError(t, Run[int, int](img, ord, conn, 1, 0))

	survivors := collectForeground(img, 1)
	require.NotEmpty(t, survivors)
	require.True(t, isOneVoxelWideClosedLoop(survivors), "expected a one-voxel-wide closed loop, got %v", survivors)
}

func collectForeground(img *voxel.DenseImage[int], fg int) []voxel.Index {
	box := img.Domain()
	var out []voxel.Index
	for y := box.Origin[1]; y < box.Origin[1]+box.Size[1]; y++ {
		for x := box.Origin[0]; x < box.Origin[0]+box.Size[0]; x++ {
			idx := voxel.Index{x, y}
			if img.At(idx) == fg {
				out = append(out, idx)
			}
		}
	}
	return out
}

// isOneVoxelWideClosedLoop reports whether every survivor has exactly two
// 8-connected foreground neighbors among the survivor set, i.e. the set
// is made of cycles with no branch points or dead ends. It does not check
// that there is only one cycle.
func isOneVoxelWideClosedLoop(survivors []voxel.Index) bool {
	set := make(map[string]bool, len(survivors))
	for _, s := range survivors {
		set[s.String()] = true
	}
	for _, s := range survivors {
		count := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				q := voxel.Index{s[0] + dx, s[1] + dy}
				if set[q.String()] {
					count++
				}
			}
		}
		if count != 2 {
			return false
		}
	}
	return true
}

// S5: the surface shell of a 3D cube, thinned under 26-connectivity, does not
// thin away: the foreground must remain non-empty.
func TestRun_CubeShell_DoesNotThinAway(t *testing.T) {
	box, err := voxel.NewBox(voxel.Index{0, 0, 0}, voxel.Index{7, 7, 7})
	require.NoError(t, err)
	img := voxel.NewDenseImage[int](box, 0)
	for z := 1; z <= 5; z++ {
		for y := 1; y <= 5; y++ {
			for x := 1; x <= 5; x++ {
				onShell := x == 1 || x == 5 || y == 1 || y == 5 || z == 1 || z == 5
				if onShell {
					img.Set(voxel.Index{x, y, z}, 1)
				}
			}
		}
	}

	ord := voxel.NewDenseOrdering[int](box)
	for z := 0; z < 7; z++ {
		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				idx := voxel.Index{x, y, z}
				if img.At(idx) == 1 {
					ord.Set(idx, 1)
				}
			}
		}
	}

	conn, err := connectivity.New(3, 0) // 26-connectivity
	require.NoError(t, err)

	require.NoError(t, Run[int, int](img, ord, conn, 1, 0))

	survivors := 0
	for z := 0; z < 7; z++ {
		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				if img.At(voxel.Index{x, y, z}) == 1 {
					survivors++
				}
			}
		}
	}
	require.NotZero(t, survivors, "a cube shell must not thin away entirely")
}

// Running the engine on its own output must be a fixed point.
func TestRun_IsIdempotent(t *testing.T) {
	img, box := square2D(t, 7, 7)
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			img.Set(voxel.Index{x, y}, 1)
		}
	}
	_ = box
	ord := chessboardOrdering(t, img, 1)
	conn, err := connectivity.New(2, 0)
	require.NoError(t, err)

	require.NoError(t, Run[int, int](img, ord, conn, 1, 0))
	before := collectForeground(img, 1)

	ord2 := voxel.NewDenseOrdering[int](img.Domain())
	for _, idx := range before {
		ord2.Set(idx, 1)
	}
	require.NoError(t, Run[int, int](img, ord2, conn, 1, 0))
	after := collectForeground(img, 1)

	require.Equal(t, before, after)
}

func TestRun_EmptyForegroundSucceeds(t *testing.T) {
	img, box := square2D(t, 4, 4)
	ord := voxel.NewDenseOrdering[int](box)
	conn, err := connectivity.New(2, 0)
	require.NoError(t, err)

	require.NoError(t, Run[int, int](img, ord, conn, 1, 0))
	require.Empty(t, collectForeground(img, 1))
}

func TestRun_MissingCollaborators(t *testing.T) {
	box, err := voxel.NewBox(voxel.Index{0, 0}, voxel.Index{3, 3})
	require.NoError(t, err)
	img := voxel.NewDenseImage[int](box, 0)
	ord := voxel.NewDenseOrdering[int](box)
	conn, err := connectivity.New(2, 0)
	require.NoError(t, err)

	err = Run[int, int](nil, ord, conn, 1, 0)
	require.ErrorIs(t, err, ErrMissingImage)

	err = Run[int, int](img, nil, conn, 1, 0)
	require.ErrorIs(t, err, ErrMissingOrdering)

	err = Run[int, int](img, ord, nil, 1, 0)
	require.ErrorIs(t, err, ErrMissingConnectivity)

	err = Run[int, int](img, ord, conn, 1, 1)
	require.ErrorIs(t, err, ErrPixelAliasing)
}

func TestRun_BoundaryTouchingForegroundFails(t *testing.T) {
	box, err := voxel.NewBox(voxel.Index{0, 0}, voxel.Index{3, 3})
	require.NoError(t, err)
	img := voxel.NewDenseImage[int](box, 0)
	img.Set(voxel.Index{0, 1}, 1)
	ord := voxel.NewDenseOrdering[int](box)
	conn, err := connectivity.New(2, 0)
	require.NoError(t, err)

	err = Run[int, int](img, ord, conn, 1, 0)
	require.ErrorIs(t, err, ErrBoundaryTouchingForeground)
}

func TestRun_ProgressObserverReceivesRunID(t *testing.T) {
	img, box := square2D(t, 7, 7)
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			img.Set(voxel.Index{x, y}, 1)
		}
	}
	_ = box
	ord := chessboardOrdering(t, img, 1)
	conn, err := connectivity.New(2, 0)
	require.NoError(t, err)

	var gotRunID string
	var calls int
	require.NoError(t, Run[int, int](img, ord, conn, 1, 0,
		WithProgressObserver[int, int](func(runID string, fraction float64) {
			calls++
			gotRunID = runID
			require.GreaterOrEqual(t, fraction, 0.0)
			require.LessOrEqual(t, fraction, 1.0)
		}),
		WithProgressBatch[int, int](1),
	))
	require.NotZero(t, calls)
	require.NotEmpty(t, gotRunID)
}
