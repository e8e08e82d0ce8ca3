package media

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-stereoviz/dsp/stereo"
)

// Track is a decoded stereo file: the interleaved PCM for playback and the
// normalized per-channel buffers for analysis.
type Track struct {
	sampleRate int
	pcm        []int16
	buffers    stereo.Buffers
}

// NewTrack splits decoded PCM into channel buffers. Non-stereo input is
// rejected with [stereo.ErrNotStereo].
func NewTrack(pcm PCM) (*Track, error) {
	if pcm.SampleRate <= 0 {
		return nil, fmt.Errorf("media: sample rate must be > 0: %d", pcm.SampleRate)
	}

	buffers, err := stereo.Split(pcm.Samples, pcm.Channels)
	if err != nil {
		return nil, err
	}

	return &Track{
		sampleRate: pcm.SampleRate,
		pcm:        pcm.Samples,
		buffers:    buffers,
	}, nil
}

// Load decodes the file at path into a stereo track.
func Load(path string, log logrus.FieldLogger) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("media: open: %w", err)
	}
	defer f.Close()

	format, err := FormatFromPath(path)
	if err != nil {
		sniffed, serr := sniff(f)
		if serr != nil {
			return nil, serr
		}
		if sniffed == FormatUnknown {
			return nil, err
		}
		format = sniffed
	}

	pcm, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("media: %s: %w", path, err)
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"path":       path,
			"format":     format,
			"sampleRate": pcm.SampleRate,
			"channels":   pcm.Channels,
		}).Debug("decoded audio")
	}

	track, err := NewTrack(pcm)
	if err != nil {
		return nil, fmt.Errorf("media: %s: %w", path, err)
	}

	if log != nil {
		left, right := track.Channels()
		log.WithFields(logrus.Fields{
			"left":  len(left),
			"right": len(right),
		}).Debug("split channels")
	}

	return track, nil
}

// SampleRate returns the sample rate in Hz.
func (t *Track) SampleRate() int {
	return t.sampleRate
}

// Channels returns the normalized left and right buffers.
func (t *Track) Channels() (left, right []float64) {
	return t.buffers.Left, t.buffers.Right
}

// PCM returns the interleaved 16-bit samples used for playback.
func (t *Track) PCM() []int16 {
	return t.pcm
}

// Duration returns the playable length of the track.
func (t *Track) Duration() time.Duration {
	frames := time.Duration(t.buffers.Frames())
	return frames * time.Second / time.Duration(t.sampleRate)
}
