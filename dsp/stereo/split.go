package stereo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stereoviz/dsp/core"
)

// Channels is the only channel count accepted by [Split].
const Channels = 2

const pcmScale = 1.0 / math.MaxInt16

// Buffers holds de-interleaved, normalized channel samples.
type Buffers struct {
	Left  []float64
	Right []float64
}

// Frames returns the number of frames available in both channels.
func (b Buffers) Frames() int {
	return min(len(b.Left), len(b.Right))
}

// Split de-interleaves pcm (even index left, odd index right) and normalizes
// each sample by the largest signed 16-bit magnitude.
//
// For an odd-length input the left channel holds one more sample than the
// right. Outputs are clamped to [-1, 1]; only -32768 actually needs it.
func Split(pcm []int16, channels int) (Buffers, error) {
	if channels != Channels {
		return Buffers{}, fmt.Errorf("%w: got %d channels", ErrNotStereo, channels)
	}

	left := make([]float64, (len(pcm)+1)/2)
	right := make([]float64, len(pcm)/2)

	for i, s := range pcm {
		if i%2 == 0 {
			left[i/2] = float64(s)
		} else {
			right[i/2] = float64(s)
		}
	}

	normalize(left)
	normalize(right)

	return Buffers{Left: left, Right: right}, nil
}

func normalize(buf []float64) {
	if len(buf) == 0 {
		return
	}
	vecmath.ScaleBlockInPlace(buf, pcmScale)
	for i, v := range buf {
		buf[i] = core.Clamp(v, -1, 1)
	}
}
