// Package topology computes the topological numbers that decide whether a
// foreground voxel is simple (removable without changing the object's
// homotopy type) or terminal (an endpoint worth preserving). It builds on
// cube.Count, gated by the foreground connectivity's background and
// neighborhood duals from package connectivity, following Malandain's
// topological-number construction.
package topology
