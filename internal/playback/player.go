package playback

import (
	"fmt"
	"io"
	"time"
)

const bytesPerSample = 2

// output is the subset of *oto.Player the transport drives.
type output interface {
	Play()
	Pause()
	IsPlaying() bool
	BufferedSize() int
	SetVolume(volume float64)
	Seek(offset int64, whence int) (int64, error)
	Close() error
}

// Player is a play/pause/resume transport over one PCM stream.
type Player struct {
	out        output
	src        *pcmReader
	sampleRate int
	channels   int
	started    bool
}

func newPlayer(src *pcmReader, sampleRate, channels int, open func(io.Reader) output) *Player {
	return &Player{
		out:        open(src),
		src:        src,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

// Play starts the stream from the beginning.
func (p *Player) Play() error {
	if _, err := p.out.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("playback: rewind: %w", err)
	}
	p.out.Play()
	p.started = true
	return nil
}

// Pause halts output, keeping the position.
func (p *Player) Pause() {
	p.out.Pause()
}

// Resume continues a paused stream.
func (p *Player) Resume() {
	p.out.Play()
}

// IsPlaying reports whether audio is currently being output.
func (p *Player) IsPlaying() bool {
	return p.out.IsPlaying()
}

// IsStopped reports whether the stream was never started or has played to
// the end.
func (p *Player) IsStopped() bool {
	if p.out.IsPlaying() {
		return false
	}
	if !p.started {
		return true
	}
	return p.src.exhausted() && p.out.BufferedSize() == 0
}

// IsPaused reports whether the stream was paused mid-way.
func (p *Player) IsPaused() bool {
	return !p.out.IsPlaying() && !p.IsStopped()
}

// Elapsed returns the position of the audio currently heard: bytes pulled by
// the output minus bytes still queued in it.
func (p *Player) Elapsed() time.Duration {
	played := p.src.consumed() - int64(p.out.BufferedSize())
	if played <= 0 || p.sampleRate <= 0 || p.channels <= 0 {
		return 0
	}
	frames := played / int64(bytesPerSample*p.channels)
	return time.Duration(frames) * time.Second / time.Duration(p.sampleRate)
}

// SetVolume sets the output gain in [0, 1].
func (p *Player) SetVolume(volume float64) {
	p.out.SetVolume(volume)
}

// Close releases the output.
func (p *Player) Close() error {
	return p.out.Close()
}
