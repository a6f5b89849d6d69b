// Package hqueue implements a hierarchical queue: an ordered mapping from
// priority key to a FIFO bucket of values. Repeated Pop calls yield values in
// the stable sort order of their push, ordered first by key (via a
// configurable Less comparator) and, within equal keys, by arrival order.
//
// Two interchangeable implementations are provided. NewMap builds a
// map-backed queue suited to arbitrary key types, using a lazy min-heap of
// active keys in the style of a Dijkstra priority queue. NewVector builds a
// vector-backed queue for key types with a small, known-bounded integral
// range, trading the heap for a direct-indexed bucket array advanced in
// fixed steps. Both satisfy the same Queue interface and the same ordering
// contract.
package hqueue
