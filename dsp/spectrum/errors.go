package spectrum

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch is returned by [Analyzer.Forward] for wrongly sized buffers.
var ErrSizeMismatch = errors.New("spectrum: window and destination must match analyzer size")

func validateSize(size int) error {
	if size < 2 || size&(size-1) != 0 {
		return fmt.Errorf("spectrum: size must be a power of two >= 2: %d", size)
	}
	return nil
}
