//go:build headless

package playback

import (
	"errors"
	"testing"
)

func TestHeadlessNewContext(t *testing.T) {
	ctx, err := NewContext(44100, 2)
	if !errors.Is(err, ErrHeadless) {
		t.Fatalf("NewContext() error = %v, want ErrHeadless", err)
	}
	if ctx != nil {
		t.Fatalf("NewContext() = %v, want nil", ctx)
	}
}

func TestHeadlessNilContextPlayer(t *testing.T) {
	var ctx *Context
	p := ctx.NewPlayer([]int16{1, 2, 3, 4})

	if !p.IsStopped() {
		t.Fatal("new player should be stopped")
	}
	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if !p.IsPlaying() {
		t.Fatal("player should be playing after Play")
	}
	if got := p.Elapsed(); got != 0 {
		t.Fatalf("Elapsed() = %v, want 0", got)
	}
	p.SetVolume(0.5)
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}
