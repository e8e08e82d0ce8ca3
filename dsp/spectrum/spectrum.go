package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// MagnitudeInto writes |X[k]| for the first len(dst) bins of in into dst.
// in must hold at least len(dst) bins.
func MagnitudeInto(dst []float64, in []complex128) {
	if len(dst) == 0 {
		return
	}

	re, im, buf := getScratch(len(dst))
	for i := range dst {
		re[i] = real(in[i])
		im[i] = imag(in[i])
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}
