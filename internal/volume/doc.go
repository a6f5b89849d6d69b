// Package volume is the CLI host's raw n-D image I/O adapter: it loads and
// saves flat, headerless byte volumes and wraps them as voxel.DenseImage[byte]
// values. It lives outside the skeletonize core's package boundary, matching
// spec §1/§6 ("image I/O... belong to the host"); the core never imports it.
package volume
