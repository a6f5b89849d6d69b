// Package skeletonize drives the priority-ordered thinning loop: it seeds a
// hierarchical queue with the border voxels of a foreground object, then
// repeatedly pops the highest-priority candidate, re-tests it for
// simplicity and terminality against the image's current state, deletes it
// if appropriate, and re-enqueues its affected neighbors. Deletion never
// changes the homotopy type of the foreground or the background.
//
// Run is the single entry point. It accepts a voxel.Image and a
// voxel.Ordering supplied by the host, mutates the image in place, and
// returns an *Error carrying one of three kinds (Configuration,
// Precondition, InternalInvariant) on failure. The thinning loop itself is
// single-threaded and non-suspending; a context.Context, when supplied via
// WithContext, is polled once per outer loop iteration, never mid-deletion,
// and a cancellation is returned as the context's own error, not an *Error.
package skeletonize
