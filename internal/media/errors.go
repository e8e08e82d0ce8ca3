package media

import "errors"

var (
	// ErrUnsupportedFormat is returned for streams no decoder handles.
	ErrUnsupportedFormat = errors.New("media: unsupported audio format")
	// ErrInvalidWAV is returned when a WAV header cannot be parsed.
	ErrInvalidWAV = errors.New("media: invalid wav file")
)
