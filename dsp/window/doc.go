// Package window generates periodic analysis windows for FFT framing.
//
// The visualizer analyzes raw samples, which is the rectangular window. The
// tapered windows trade amplitude for lower leakage and are meant for offline
// inspection.
package window
