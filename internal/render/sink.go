package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSink fills rectangles on an ebiten image.
type ImageSink struct {
	Image     *ebiten.Image
	AntiAlias bool
}

// FillRect implements Sink.
func (s ImageSink) FillRect(r Rect) {
	vector.DrawFilledRect(s.Image, r.X, r.Y, r.W, r.H, r.Color, s.AntiAlias)
}
