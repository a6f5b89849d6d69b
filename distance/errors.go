package distance

import "errors"

// ErrMissingImage indicates Chessboard was called with a nil image.
var ErrMissingImage = errors.New("distance: image is nil")
