package render

import (
	"image/color"
	"math"

	"github.com/cwbudde/algo-stereoviz/dsp/core"
	"github.com/cwbudde/algo-stereoviz/dsp/pan"
)

const (
	DefaultWidth   = 1024
	DefaultHeight  = 768
	DefaultPadding = 64
)

const (
	amplitudeGain = 0.08
	minBarAlpha   = 8
	firstBarBin   = 32
	bassFirstBin  = 1
	bassLastBin   = 4
	bassDivisor   = 32
	bassMaxHeight = 96
	barWidthGain  = 0.5
	barHeightGain = 8
)

var bassColor = color.NRGBA{R: 30, G: 30, B: 30}

// Rect is an axis-aligned filled rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float32
	Color      color.NRGBA
}

// Sink receives rectangles to fill.
type Sink interface {
	FillRect(r Rect)
}

// Layout holds the canvas geometry.
type Layout struct {
	Width   float64
	Height  float64
	Padding float64
}

// Option configures a Layout.
type Option func(*Layout)

// WithSize sets the canvas size. Non-positive dimensions are ignored.
func WithSize(width, height float64) Option {
	return func(l *Layout) {
		if width > 0 && height > 0 {
			l.Width = width
			l.Height = height
		}
	}
}

// WithPadding sets the horizontal inset of the pan axis.
func WithPadding(padding float64) Option {
	return func(l *Layout) {
		if padding >= 0 {
			l.Padding = padding
		}
	}
}

// DefaultLayout returns the 1024x768 canvas with 64px padding.
func DefaultLayout() Layout {
	return Layout{Width: DefaultWidth, Height: DefaultHeight, Padding: DefaultPadding}
}

// NewLayout returns DefaultLayout modified by opts.
func NewLayout(opts ...Option) Layout {
	l := DefaultLayout()
	for _, opt := range opts {
		if opt != nil {
			opt(&l)
		}
	}
	return l
}

// Build appends the rectangles for one frame to dst and returns it.
//
// A translucent full-width band centred vertically reflects the lowest bins.
// Every bin from 32 up becomes a bar placed horizontally by its direction,
// sized and faded by its amplitude and tinted by its index.
func (l Layout) Build(dst []Rect, sources []pan.Source) []Rect {
	dst = dst[:0]

	if r, ok := l.bassBand(sources); ok {
		dst = append(dst, r)
	}

	bins := len(sources)
	span := l.Width - 2*l.Padding
	for i := firstBarBin; i < bins; i++ {
		s := sources[i]
		alpha := core.FloorByte(math.Min(s.Amplitude*amplitudeGain*255, 255))
		if alpha < minBarAlpha {
			continue
		}

		w := s.Amplitude * barWidthGain
		h := l.Height/5 + s.Amplitude*barHeightGain
		x := l.Padding + (s.Direction+1)/2*span
		y := l.Height / 2

		dst = append(dst, Rect{
			X: float32(x - w/2),
			Y: float32(y - h/2),
			W: float32(w),
			H: float32(h),
			Color: color.NRGBA{
				R: core.FloorByte(float64(i) / float64(bins) * 255),
				G: 128,
				B: 192,
				A: alpha,
			},
		})
	}
	return dst
}

func (l Layout) bassBand(sources []pan.Source) (Rect, bool) {
	if len(sources) <= bassLastBin {
		return Rect{}, false
	}

	var sum float64
	for _, s := range sources[bassFirstBin : bassLastBin+1] {
		sum += s.Amplitude
	}
	bass := sum * amplitudeGain / bassDivisor
	if bass <= 0 {
		return Rect{}, false
	}

	h := math.Min(bass*bassMaxHeight, bassMaxHeight)
	c := bassColor
	c.A = core.FloorByte(math.Min(h/bassMaxHeight*255, 255))
	return Rect{
		X:     0,
		Y:     float32((l.Height - h) / 2),
		W:     float32(l.Width),
		H:     float32(h),
		Color: c,
	}, true
}

// Draw fills every rect on sink in order.
func Draw(sink Sink, rects []Rect) {
	for _, r := range rects {
		sink.FillRect(r)
	}
}
