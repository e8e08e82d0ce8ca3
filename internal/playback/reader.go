package playback

import (
	"encoding/binary"
	"errors"
	"io"
	"sync/atomic"
)

var errNegativePosition = errors.New("playback: negative seek position")

// pcmReader serves little-endian PCM bytes and tracks how many were consumed.
type pcmReader struct {
	data []byte
	pos  atomic.Int64
}

func newPCMReader(pcm []int16) *pcmReader {
	data := make([]byte, 2*len(pcm))
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &pcmReader{data: data}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	pos := r.pos.Load()
	if pos >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[pos:])
	r.pos.Add(int64(n))
	return n, nil
}

func (r *pcmReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos.Load() + offset
	case io.SeekEnd:
		abs = int64(len(r.data)) + offset
	default:
		return 0, errors.New("playback: invalid whence")
	}
	if abs < 0 {
		return 0, errNegativePosition
	}
	r.pos.Store(abs)
	return abs, nil
}

// consumed returns the number of bytes handed to the output so far.
func (r *pcmReader) consumed() int64 {
	return min(r.pos.Load(), int64(len(r.data)))
}

func (r *pcmReader) exhausted() bool {
	return r.pos.Load() >= int64(len(r.data))
}
