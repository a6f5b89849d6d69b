package skeletonize

import "errors"

// ErrorKind classifies a failure returned by Run into one of three
// categories, matching the engine's error-handling design: configuration
// problems the caller must fix before retrying, precondition violations
// inherent to the supplied image, and internal invariants that, if ever
// tripped, indicate a bug rather than bad input.
type ErrorKind int

const (
	// KindConfiguration covers a missing image, missing ordering, or
	// missing/invalid connectivity.
	KindConfiguration ErrorKind = iota
	// KindPrecondition covers boundary-touching foreground, an ordering
	// domain mismatch, or foreground/background value aliasing.
	KindPrecondition
	// KindInternalInvariant is never expected in correct code; it signals
	// that an assumption the algorithm depends on did not hold.
	KindInternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindPrecondition:
		return "precondition"
	case KindInternalInvariant:
		return "internal invariant"
	default:
		return "unknown"
	}
}

// Error wraps a specific sentinel cause with its ErrorKind. Callers that
// need to distinguish kinds should type-assert to *Error; callers that only
// care about a specific cause should use errors.Is against the sentinels
// below, since Error.Unwrap exposes the wrapped cause.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Sentinel causes. Each is wrapped in an *Error of the matching kind by Run.
var (
	ErrMissingImage               = errors.New("skeletonize: image is nil")
	ErrMissingOrdering            = errors.New("skeletonize: ordering is nil")
	ErrMissingConnectivity        = errors.New("skeletonize: connectivity is nil")
	ErrBoundaryTouchingForeground = errors.New("skeletonize: foreground voxel touches the domain boundary")
	ErrOrderingDomainMismatch     = errors.New("skeletonize: ordering image domain does not match the input image domain")
	ErrPixelAliasing              = errors.New("skeletonize: foreground and background values are equal")
	// ErrUnexpectedNonSimpleDeletion would indicate the engine deleted a
	// voxel the simplicity test had just rejected; it can only be reached
	// by a defect in the thinning loop itself, not by any input.
	ErrUnexpectedNonSimpleDeletion = errors.New("skeletonize: internal invariant violated: deleted a non-simple voxel")
)

func newConfigError(cause error) error {
	return &Error{Kind: KindConfiguration, Err: cause}
}

func newPreconditionError(cause error) error {
	return &Error{Kind: KindPrecondition, Err: cause}
}

func newInternalInvariantError(cause error) error {
	return &Error{Kind: KindInternalInvariant, Err: cause}
}
