// Command stereoviz plays a stereo audio file and draws where each frequency
// sits in the stereo field.
//
// Usage:
//
//	stereoviz [file]
//
// The file defaults to sound.mp3 and is taken verbatim, so names starting
// with a dash work too. WAV, MP3, FLAC and Ogg Vorbis are supported. Space
// starts, pauses and resumes playback; Escape quits.
package main

import (
	"os"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-stereoviz/internal/app"
)

// pathFromArgs returns the file named by a single command-line argument, or
// the default track for any other argument count.
func pathFromArgs(args []string) string {
	if len(args) == 2 {
		return args[1]
	}
	return app.DefaultPath
}

func main() {
	path := pathFromArgs(os.Args)

	log := logrus.New()

	features := cpu.DetectFeatures()
	log.WithFields(logrus.Fields{
		"arch": features.Architecture,
		"sse2": features.HasSSE2,
		"avx2": features.HasAVX2,
		"neon": features.HasNEON,
	}).Debug("cpu features")

	cfg := app.NewConfig(path, app.WithLogger(log))
	game, err := app.New(cfg)
	if err != nil {
		log.WithError(err).WithField("path", path).Fatal("failed to load audio")
	}

	log.Info("Ready")

	ebiten.SetWindowSize(int(cfg.Layout.Width), int(cfg.Layout.Height))
	ebiten.SetWindowTitle(app.Title)

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		log.WithError(err).Warn("failed to close audio output")
	}
	if runErr != nil {
		log.WithError(runErr).Fatal("visualizer stopped")
	}
}
