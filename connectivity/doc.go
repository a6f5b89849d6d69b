// Package connectivity implements the (n,k)-connectivity algebra used to
// decide adjacency between voxels in an n-dimensional digital image, using
// the cellular-decomposition definition of Malandain ("On Topology in
// Multidimensional Discrete Spaces"): two voxels are adjacent iff their
// closed unit boxes share a cell of topological dimension >= k.
//
// A Connectivity enumerates the offsets of its neighbors once, at
// construction, as an immutable table; Background and Neighborhood compute
// the dual (background) and paired (unit-cube-traversal) connectivities a
// given foreground Connectivity requires, per the fixed 2-D/3-D exception
// tables in spec.
package connectivity
