package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-stereoviz/dsp/spectrum"
	"github.com/cwbudde/algo-stereoviz/dsp/stereo"
	"github.com/cwbudde/algo-stereoviz/internal/media"
	"github.com/cwbudde/algo-stereoviz/internal/playback"
	"github.com/cwbudde/algo-stereoviz/internal/render"
	"github.com/cwbudde/algo-stereoviz/internal/visualizer"
)

// Player is the transport the game drives and the clock the driver reads.
type Player interface {
	playback.Transport
	visualizer.Clock
	SetVolume(volume float64)
	Close() error
}

// Game implements ebiten.Game.
type Game struct {
	driver      *visualizer.Driver
	player      Player
	layout      render.Layout
	rects       []render.Rect
	log         logrus.FieldLogger
	justPressed func(ebiten.Key) bool
}

// New loads cfg.Path, opens the audio device and prepares the visualizer.
// Playback starts paused; Space starts it.
func New(cfg Config) (*Game, error) {
	if cfg.Log == nil {
		cfg.Log = discardLogger()
	}

	track, err := media.Load(cfg.Path, cfg.Log)
	if err != nil {
		return nil, err
	}

	ctx, err := playback.NewContext(track.SampleRate(), stereo.Channels)
	if err != nil {
		return nil, err
	}

	return newGame(cfg, track, ctx.NewPlayer(track.PCM()))
}

func newGame(cfg Config, track visualizer.Track, player Player) (*Game, error) {
	analyzer, err := spectrum.NewAnalyzer(spectrum.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	driver := visualizer.New(analyzer,
		visualizer.WithLogger(cfg.Log),
		visualizer.WithEstimatorOptions(cfg.Estimator...),
	)
	driver.Load(track)
	player.SetVolume(cfg.Volume)

	left, right := track.Channels()
	cfg.Log.WithFields(logrus.Fields{
		"path":       cfg.Path,
		"sampleRate": track.SampleRate(),
		"left":       len(left),
		"right":      len(right),
	}).Info("track loaded")

	return &Game{
		driver:      driver,
		player:      player,
		layout:      cfg.Layout,
		log:         cfg.Log,
		justPressed: inpututil.IsKeyJustPressed,
	}, nil
}

// Update handles the key bindings and analyzes the current playback window.
func (g *Game) Update() error {
	if g.justPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.justPressed(ebiten.KeySpace) {
		if err := playback.Toggle(g.player); err != nil {
			return err
		}
		g.log.WithField("playing", g.player.IsPlaying()).Debug("transport toggled")
	}

	_, err := g.driver.Tick(g.player)
	return err
}

// Draw clears the screen and paints the current sources.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	render.Draw(render.ImageSink{Image: screen}, g.frame())
}

// Layout keeps a fixed logical canvas regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.layout.Width), int(g.layout.Height)
}

// Close releases the audio output.
func (g *Game) Close() error {
	return g.player.Close()
}

func (g *Game) frame() []render.Rect {
	g.rects = g.layout.Build(g.rects, g.driver.Sources())
	return g.rects
}
