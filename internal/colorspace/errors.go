package colorspace

import "errors"

// ErrUnimplemented is returned by conversions that have no verified
// algorithm in this package. Callers can detect it with errors.Is.
var ErrUnimplemented = errors.New("conversion not implemented")
