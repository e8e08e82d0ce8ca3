//go:build !headless

package playback

import (
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"
)

// Context owns the process-wide oto output.
type Context struct {
	ctx        *oto.Context
	sampleRate int
	channels   int
}

// NewContext opens the audio device. oto allows one context per process.
func NewContext(sampleRate, channels int) (*Context, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("playback: open audio device: %w", err)
	}
	<-ready

	return &Context{ctx: ctx, sampleRate: sampleRate, channels: channels}, nil
}

// NewPlayer creates a paused player for interleaved pcm.
func (c *Context) NewPlayer(pcm []int16) *Player {
	return newPlayer(newPCMReader(pcm), c.sampleRate, c.channels, func(r io.Reader) output {
		return c.ctx.NewPlayer(r)
	})
}
