// Package skeletonize (module github.com/glehmann/skeletonize) is a
// homotopy-preserving thinning engine for binary n-dimensional digital
// images: it reduces a foreground object to a one-voxel-wide skeleton while
// preserving the topology of both the foreground and the background.
//
// The module is organized bottom-up, leaves first:
//
//	voxel/        — Index/Box geometry and the Image/Ordering host
//	                collaborator interfaces, plus a dense reference
//	                implementation of both.
//	connectivity/ — the (n,k)-connectivity algebra: neighbor enumeration,
//	                offset codec, and the background/neighborhood duality
//	                tables a foreground connectivity requires.
//	cube/         — UnitCubeNeighbors (adjacency within the 3ⁿ cube) and
//	                Count (connected-component counting over a masked
//	                subset of it).
//	topology/     — the topological-number test (simplicity) and the
//	                default one-neighbor terminality rule, built on cube.
//	hqueue/       — the hierarchical (priority-ordered, FIFO-within-key)
//	                queue that drives deletion order.
//	skeletonize/  — the thinning loop itself: Run seeds the queue from the
//	                border of the foreground object and drains it,
//	                deleting every voxel that is simple and non-terminal.
//	distance/     — a default chessboard/chamfer distance transform, used
//	                to populate an ordering image when the host has none
//	                of its own.
//	cmd/skeletonize/ — a CLI host wiring a raw volume reader, the distance
//	                transform, and the engine end to end.
//
// Image I/O, progress reporting, and the scalar ordering image's contents
// are the host's responsibility; the core here consumes an already-loaded
// image and an already-computed ordering and never performs I/O itself.
package skeletonize
