package connectivity

import "errors"

// Sentinel errors for connectivity construction and global-default handling.
var (
	// ErrInvalidDescriptor indicates n < 1 or k not in [0, n).
	ErrInvalidDescriptor = errors.New("connectivity: k must satisfy 0 <= k < n")

	// ErrGlobalDefaultFrozen indicates an attempt to change the global
	// default (n,k) after it has already been read by some descriptor.
	ErrGlobalDefaultFrozen = errors.New("connectivity: global default connectivity is frozen after first use")
)
