package skeletonize

import (
	"context"

	"github.com/glehmann/skeletonize/hqueue"
	"github.com/glehmann/skeletonize/topology"
)

// ProgressObserver is notified at most once per ProgressBatch deletions,
// with the run's RunID and the number of deletions so far divided by the
// number of border voxels seeded into the queue, capped at 1.
type ProgressObserver func(runID string, fraction float64)

// Option configures Run via functional arguments, in the style of
// hqueue/topology's sibling packages.
type Option[P comparable, K any] func(*config[P, K])

type config[P comparable, K any] struct {
	ctx                context.Context
	simplicity         topology.SimplicityPredicate[P]
	terminality        topology.TerminalityPredicate[P]
	less               hqueue.Less[K]
	progress           ProgressObserver
	progressBatch      int
	checkBoundaryTouch bool
}

func defaultConfig[P comparable, K any]() config[P, K] {
	return config[P, K]{
		ctx:                context.Background(),
		progressBatch:      256,
		checkBoundaryTouch: true,
	}
}

// WithContext sets the context polled once per outer loop iteration for
// cooperative cancellation; no single pop/test/delete step is interrupted
// mid-way.
func WithContext[P comparable, K any](ctx context.Context) Option[P, K] {
	return func(c *config[P, K]) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithSimplicityPredicate overrides the default topological-number
// simplicity test.
func WithSimplicityPredicate[P comparable, K any](pred topology.SimplicityPredicate[P]) Option[P, K] {
	return func(c *config[P, K]) {
		if pred != nil {
			c.simplicity = pred
		}
	}
}

// WithTerminalityPredicate overrides the default one-neighbor terminality
// rule.
func WithTerminalityPredicate[P comparable, K any](pred topology.TerminalityPredicate[P]) Option[P, K] {
	return func(c *config[P, K]) {
		if pred != nil {
			c.terminality = pred
		}
	}
}

// WithComparator overrides the default ascending priority-key comparator.
func WithComparator[P comparable, K any](less hqueue.Less[K]) Option[P, K] {
	return func(c *config[P, K]) {
		if less != nil {
			c.less = less
		}
	}
}

// WithProgressObserver registers a callback notified at most once per
// progress batch; see WithProgressBatch to change the batch size (default
// 256).
func WithProgressObserver[P comparable, K any](obs ProgressObserver) Option[P, K] {
	return func(c *config[P, K]) {
		c.progress = obs
	}
}

// WithProgressBatch sets how many deletions elapse between progress
// notifications. n <= 0 disables progress reporting entirely.
func WithProgressBatch[P comparable, K any](n int) Option[P, K] {
	return func(c *config[P, K]) {
		c.progressBatch = n
	}
}

// WithoutBoundaryCheck skips the O(|domain|) pre-scan that verifies the
// foreground does not touch the image boundary. Without this check, a
// boundary-touching foreground leaves the thinning loop's behavior
// undefined rather than failing fast, trading a precondition guarantee for
// one less full-image scan.
func WithoutBoundaryCheck[P comparable, K any]() Option[P, K] {
	return func(c *config[P, K]) {
		c.checkBoundaryTouch = false
	}
}
