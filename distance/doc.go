// Package distance supplies a default ordering field for the skeletonize
// core: a chessboard (chebyshev) distance-to-background transform, computed
// in two raster sweeps rather than a global relaxation search. It is a
// host-side convenience, not part of the core's own package boundary (see
// spec §1/§6): voxel.Ordering only requires an At(idx) accessor, and any
// other distance metric a host prefers plugs in the same way.
package distance
