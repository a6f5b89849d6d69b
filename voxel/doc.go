// Package voxel defines the n-dimensional geometry and the host collaborator
// interfaces the thinning engine is built against: Index (a point in ℤⁿ),
// Box (an axis-aligned domain), Image[P] (index-based read/write access to
// pixel data) and Ordering[K] (read-only access to a deletion-priority
// scalar field sharing the image's domain).
//
// The engine never assumes a storage layout: Image and Ordering are plain
// interfaces, so a host can back them with whatever it already has (a
// memory-mapped volume, a tiled store, a DICOM series). DenseImage and
// DenseOrdering are a flat-array reference implementation provided for
// tests and for hosts with no reason to roll their own.
package voxel
