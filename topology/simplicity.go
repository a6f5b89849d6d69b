package topology

import "github.com/glehmann/skeletonize/voxel"

// SimplicityPredicate decides whether x may be deleted from img without
// changing its homotopy type. Engines accept a SimplicityPredicate instead
// of calling IsSimple directly so that callers can substitute a relaxed or
// instrumented test without touching the thinning loop itself.
type SimplicityPredicate[P comparable] func(img voxel.Image[P], x voxel.Index) bool

// DefaultSimplicity returns the standard topological-number simplicity
// test for foreground value f, using the precomputed Tables t.
func DefaultSimplicity[P comparable](f P, t *Tables) SimplicityPredicate[P] {
	return func(img voxel.Image[P], x voxel.Index) bool {
		return IsSimple(img, x, f, t)
	}
}
