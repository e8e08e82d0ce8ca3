package stereo

import "errors"

// ErrNotStereo is returned when a source does not carry exactly two channels.
var ErrNotStereo = errors.New("stereo: channels must be stereo")
