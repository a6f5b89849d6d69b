// Package cube implements the 3ⁿ unit-cube machinery the topological-number
// computation is built on: UnitCubeNeighbors precomputes, once per
// (connectivity, neighborhood-connectivity) pair, which positions in the
// cube can reach which other positions; Count then uses that
// table to count connected components of an arbitrary masked subset of the
// cube via union-find, gating every union by the precomputed table instead
// of a fresh adjacency test.
package cube
