// Command stereoinfo prints the per-bin amplitude and stereo direction of an
// audio file at a given playback position.
//
// Usage:
//
//	stereoinfo [flags] file
//
// Examples:
//
//	stereoinfo song.wav
//	stereoinfo -at 42s -skip 32 -bins 64 song.mp3
//	stereoinfo -v -frames 1 song.wav
//	stereoinfo -window hann -modulus song.wav
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-stereoviz/dsp/pan"
	"github.com/cwbudde/algo-stereoviz/dsp/spectrum"
	"github.com/cwbudde/algo-stereoviz/dsp/window"
	"github.com/cwbudde/algo-stereoviz/internal/media"
	"github.com/cwbudde/algo-stereoviz/internal/visualizer"
	"github.com/cwbudde/algo-stereoviz/stats/level"
)

func main() {
	at := flag.Duration("at", time.Second, "playback position to analyze")
	bins := flag.Int("bins", 32, "number of bins to print")
	skip := flag.Int("skip", 0, "first bin to print")
	frames := flag.Int("frames", 16, "frames to run at the position so the smoothing settles")
	modulus := flag.Bool("modulus", false, "use the bin modulus instead of the real part as amplitude")
	taper := flag.String("window", "rectangular", "analysis window: rectangular, hann, hamming, blackman")
	verbose := flag.Bool("v", false, "log decoder and driver details")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stereoinfo [flags] file\n\n")
		fmt.Fprintf(os.Stderr, "Prints per-bin amplitude and stereo direction at a playback position.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stereoinfo song.wav\n")
		fmt.Fprintf(os.Stderr, "  stereoinfo -at 42s -skip 32 -bins 64 song.mp3\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	win, err := window.ParseType(*taper)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	req := request{
		path:    flag.Arg(0),
		at:      *at,
		frames:  *frames,
		skip:    *skip,
		bins:    *bins,
		window:  win,
		modulus: *modulus,
	}
	if err := run(os.Stdout, log, req); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// request is one inspection as given on the command line.
type request struct {
	path    string
	at      time.Duration
	frames  int
	skip    int
	bins    int
	window  window.Type
	modulus bool
}

func run(w io.Writer, log logrus.FieldLogger, req request) error {
	track, err := media.Load(req.path, log)
	if err != nil {
		return err
	}

	analyzer, err := spectrum.NewAnalyzer(spectrum.FFTSize)
	if err != nil {
		return err
	}

	opts := []visualizer.Option{visualizer.WithLogger(log)}
	if req.modulus {
		opts = append(opts, visualizer.WithEstimatorOptions(pan.WithMode(pan.ModeModulus)))
	}

	coeffs := window.Generate(req.window, analyzer.Size())
	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return err
	}
	if req.window != window.TypeRectangular {
		opts = append(opts, visualizer.WithWindow(coeffs))
	}

	driver := visualizer.New(analyzer, opts...)
	driver.Load(track)

	for range max(req.frames, 1) {
		state, err := driver.AnalyzeAt(req.at)
		if err != nil {
			return err
		}
		if state != visualizer.StateAnalyzing {
			return fmt.Errorf("no full %d-sample window at %v (track is %v)", analyzer.Size(), req.at, track.Duration())
		}
	}

	if _, err := fmt.Fprintf(w, "window %s, coherent gain %.4f\n\n", req.window, gain); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	left, right, _ := driver.Window()
	if err := printImage(w, level.Measure(left, right)); err != nil {
		return err
	}
	return printSources(w, driver.Sources(), float64(track.SampleRate()), analyzer.Size(), req.skip, req.bins)
}

func printImage(w io.Writer, img level.Image) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Channel\tRMS [dB]\tPeak [dB]\tDC\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	rows := []struct {
		name string
		c    level.Channel
	}{
		{"left", img.Left},
		{"right", img.Right},
		{"mid", img.Mid},
		{"side", img.Side},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%+.4f\n", r.name, r.c.RMS_dB, r.c.Peak_dB, r.c.DC); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	_, err := fmt.Fprintf(w, "correlation %+.4f, balance %+.4f\n\n", img.Correlation, img.Balance)
	return err
}

func printSources(w io.Writer, sources []pan.Source, sampleRate float64, size, skip, bins int) error {
	first := min(max(skip, 0), len(sources))
	last := min(first+max(bins, 0), len(sources))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Bin\tHz\tAmplitude\tDirection\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---\t--\t---------\t---------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for i := first; i < last; i++ {
		s := sources[i]
		if _, err := fmt.Fprintf(tw, "%d\t%.1f\t%.4f\t%+.4f\n",
			i,
			spectrum.BinFrequency(i, size, sampleRate),
			s.Amplitude,
			s.Direction,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
