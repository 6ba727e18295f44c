package core

import "errors"

// ErrInvalidConfiguration is returned when a grid or speed table cannot be
// built from the supplied values.
var ErrInvalidConfiguration = errors.New("invalid configuration")
