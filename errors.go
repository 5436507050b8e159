package emotext

import "errors"

// ErrNoRegularFace is returned when a FontSet is built without a regular face.
var ErrNoRegularFace = errors.New("emotext: font set has no regular face")
