//go:build headless

package playback

import (
	"errors"
	"io"
)

// ErrHeadless is returned by NewContext in headless builds.
var ErrHeadless = errors.New("playback: audio output disabled in headless build")

// Context is a stub in headless builds.
type Context struct {
	sampleRate int
	channels   int
}

// NewContext always fails in headless builds.
func NewContext(sampleRate, channels int) (*Context, error) {
	return nil, ErrHeadless
}

// NewPlayer returns a silent player. A nil Context, as handed out by
// NewContext, yields a player whose clock stays at zero.
func (c *Context) NewPlayer(pcm []int16) *Player {
	if c == nil {
		c = &Context{}
	}
	return newPlayer(newPCMReader(pcm), c.sampleRate, c.channels, func(io.Reader) output {
		return &silentOutput{}
	})
}

type silentOutput struct{ playing bool }

func (s *silentOutput) Play()                          { s.playing = true }
func (s *silentOutput) Pause()                         { s.playing = false }
func (s *silentOutput) IsPlaying() bool                { return s.playing }
func (s *silentOutput) BufferedSize() int              { return 0 }
func (s *silentOutput) SetVolume(float64)              {}
func (s *silentOutput) Seek(int64, int) (int64, error) { return 0, nil }
func (s *silentOutput) Close() error                   { return nil }
