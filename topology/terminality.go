package topology

import (
	"github.com/glehmann/skeletonize/connectivity"
	"github.com/glehmann/skeletonize/voxel"
)

// TerminalityPredicate decides whether x should be preserved as an endpoint
// rather than thinned away, even when it is otherwise simple.
type TerminalityPredicate[P comparable] func(img voxel.Image[P], x voxel.Index) bool

// DefaultTerminality returns the standard line-endpoint rule: x is terminal
// iff it has exactly one fg-connected foreground neighbor. An isolated point
// has zero foreground neighbors, so it is not terminal under this rule; it
// is kept anyway, because its foreground topological number is 0 and it is
// therefore never simple.
func DefaultTerminality[P comparable](f P, fg *connectivity.Connectivity) TerminalityPredicate[P] {
	return func(img voxel.Image[P], x voxel.Index) bool {
		count := 0
		for _, off := range fg.Neighbors() {
			q := x.Add(off)
			if !img.InBounds(q) {
				continue
			}
			if img.At(q) == f {
				count++
				if count > 1 {
					return false
				}
			}
		}
		return count == 1
	}
}
