package skeletonize

import (
	"github.com/google/uuid"

	"github.com/glehmann/skeletonize/connectivity"
	"github.com/glehmann/skeletonize/hqueue"
	"github.com/glehmann/skeletonize/topology"
	"github.com/glehmann/skeletonize/voxel"
)

// item pairs a priority key with the voxel it was seeded or re-enqueued
// under; the queue carries items, not bare indices, so FIFO-within-key
// order is the hierarchical queue's own.
type item[K any] struct {
	key K
	idx voxel.Index
}

// engine encapsulates the mutable state of a single Run: the image being
// thinned, the precomputed topology tables, the queue, and bookkeeping for
// progress reporting. It is scoped to one Run call and discarded afterward.
type engine[P comparable, K voxel.Ordered] struct {
	img   voxel.Image[P]
	ord   voxel.Ordering[K]
	fg    P
	bg    P
	conn  *connectivity.Connectivity
	cfg   config[P, K]
	queue hqueue.Queue[K, item[K]]

	runID        string
	initialCount int
	deleted      int
}

// Run thins img in place, driven by ord's priority field, until the
// hierarchical queue empties. It returns an *Error (see errors.go) if the
// required collaborators are missing or a precondition is violated; a nil
// return means the image now holds its skeleton.
func Run[P comparable, K voxel.Ordered](
	img voxel.Image[P], ord voxel.Ordering[K],
	conn *connectivity.Connectivity,
	fg, bg P,
	opts ...Option[P, K],
) error {
	if img == nil {
		return newConfigError(ErrMissingImage)
	}
	if ord == nil {
		return newConfigError(ErrMissingOrdering)
	}
	if conn == nil {
		return newConfigError(ErrMissingConnectivity)
	}
	if fg == bg {
		return newPreconditionError(ErrPixelAliasing)
	}
	if od, ok := ord.(interface{ Domain() voxel.Box }); ok {
		if !sameDomain(od.Domain(), img.Domain()) {
			return newPreconditionError(ErrOrderingDomainMismatch)
		}
	}

	cfg := defaultConfig[P, K]()
	for _, o := range opts {
		o(&cfg)
	}
	tab := topology.NewTables(conn)
	if cfg.simplicity == nil {
		cfg.simplicity = topology.DefaultSimplicity(fg, tab)
	}
	if cfg.terminality == nil {
		cfg.terminality = topology.DefaultTerminality(fg, conn)
	}
	if cfg.less == nil {
		cfg.less = hqueue.Ascending[K]()
	}

	e := &engine[P, K]{
		img:   img,
		ord:   ord,
		fg:    fg,
		bg:    bg,
		conn:  conn,
		cfg:   cfg,
		queue: hqueue.NewMap[K, item[K]](cfg.less),
		runID: uuid.NewString(),
	}

	if cfg.checkBoundaryTouch {
		if err := e.checkBoundary(); err != nil {
			return err
		}
	}

	e.seed()
	e.initialCount = e.queue.Size()
	return e.thin()
}

// checkBoundary scans the domain for a foreground voxel that touches the
// outer face of img's box, returning ErrBoundaryTouchingForeground as soon
// as one is found.
func (e *engine[P, K]) checkBoundary() error {
	box := e.img.Domain()
	return forEachIndex(box, func(idx voxel.Index) error {
		if e.img.At(idx) == e.fg && box.TouchesBoundary(idx) {
			return newPreconditionError(ErrBoundaryTouchingForeground)
		}
		return nil
	})
}

// seed pushes every border foreground voxel (one with at least one
// background neighbor under the foreground connectivity) into the queue,
// keyed by its ordering priority.
func (e *engine[P, K]) seed() {
	box := e.img.Domain()
	_ = forEachIndex(box, func(idx voxel.Index) error {
		if e.img.At(idx) != e.fg {
			return nil
		}
		if e.isBorder(idx) {
			e.push(idx)
		}
		return nil
	})
}

// isBorder reports whether idx has at least one background (or
// out-of-domain) voxel among its foreground-connectivity neighbors.
func (e *engine[P, K]) isBorder(idx voxel.Index) bool {
	for _, off := range e.conn.Neighbors() {
		q := idx.Add(off)
		if !e.img.InBounds(q) || e.img.At(q) != e.fg {
			return true
		}
	}
	return false
}

func (e *engine[P, K]) push(idx voxel.Index) {
	e.queue.Push(e.ord.At(idx), item[K]{key: e.ord.At(idx), idx: idx})
}

// thin drains the queue, re-testing each candidate against the image's
// current state before deleting it. Cancellation, when a context was
// supplied via WithContext, is polled once per outer iteration.
func (e *engine[P, K]) thin() error {
	for {
		select {
		case <-e.cfg.ctx.Done():
			return e.cfg.ctx.Err()
		default:
		}

		it, ok := e.queue.Pop()
		if !ok {
			return nil
		}
		x := it.idx

		if e.img.At(x) != e.fg {
			continue // stale entry: already deleted by a prior pop
		}
		if !e.cfg.simplicity(e.img, x) {
			continue // neighborhood changed since enqueue; no longer simple
		}
		if e.cfg.terminality(e.img, x) {
			continue // preserved endpoint
		}

		e.img.Set(x, e.bg)
		e.deleted++
		e.reportProgress()

		for _, off := range e.conn.Neighbors() {
			y := x.Add(off)
			if e.img.InBounds(y) && e.img.At(y) == e.fg {
				e.push(y)
			}
		}
	}
}

func (e *engine[P, K]) reportProgress() {
	if e.cfg.progress == nil || e.cfg.progressBatch <= 0 {
		return
	}
	if e.deleted%e.cfg.progressBatch != 0 {
		return
	}
	total := e.initialCount
	if total <= 0 {
		total = 1
	}
	fraction := float64(e.deleted) / float64(total)
	if fraction > 1 {
		fraction = 1
	}
	e.cfg.progress(e.runID, fraction)
}

// sameDomain reports whether a and b describe the same axis-aligned box.
func sameDomain(a, b voxel.Box) bool {
	return a.Origin.Equal(b.Origin) && a.Size.Equal(b.Size)
}

// forEachIndex walks every index of box in row-major order, the same
// traversal convention voxel.DenseImage uses, calling fn on each and
// stopping early if fn returns a non-nil error.
func forEachIndex(box voxel.Box, fn func(voxel.Index) error) error {
	n := box.Dim()
	idx := box.Origin.Clone()
	if n == 0 {
		return nil
	}
	for {
		if err := fn(idx.Clone()); err != nil {
			return err
		}
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
			return nil
		}
	}
}
