package hqueue

import "github.com/glehmann/skeletonize/voxel"

// Less reports whether a has strictly higher priority than b, i.e. whether a
// would be popped before b were both keys' buckets non-empty. The
// conventional "lower values first" ordering is Ascending; Descending
// inverts it for callers that want larger keys processed first.
type Less[K any] func(a, b K) bool

// Ascending orders keys by <, matching the default "lower priority value
// pops first" convention.
func Ascending[K voxel.Ordered]() Less[K] {
	return func(a, b K) bool { return a < b }
}

// Descending orders keys by >, the mirror image of Ascending.
func Descending[K voxel.Ordered]() Less[K] {
	return func(a, b K) bool { return a > b }
}

// Queue is a hierarchical queue over priority keys K and payload values V.
// size equals the sum of its buckets' sizes; popping drains the current
// highest-priority bucket in FIFO order, and a bucket that empties is
// removed so the next priority becomes current.
type Queue[K any, V any] interface {
	// Push appends value to the FIFO bucket for key. Duplicate keys and
	// duplicate values are both permitted.
	Push(key K, value V)
	// Pop removes and returns the front of the current highest-priority
	// bucket. ok is false iff the queue is empty.
	Pop() (value V, ok bool)
	// Front returns the value Pop would return, without removing it.
	Front() (value V, ok bool)
	// TopKey returns the key of the current highest-priority non-empty
	// bucket. ok is false iff the queue is empty.
	TopKey() (key K, ok bool)
	// Size returns the total number of queued values.
	Size() int
	// Empty reports whether Size() == 0.
	Empty() bool
}
