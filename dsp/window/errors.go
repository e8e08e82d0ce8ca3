package window

import "errors"

// ErrUnknownType is returned by ParseType for an unrecognized name.
var ErrUnknownType = errors.New("window: unknown type")

var errEmptyCoeffs = errors.New("window: coefficients must not be empty")
