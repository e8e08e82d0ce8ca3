// Package playback plays interleaved 16-bit PCM through oto and reports the
// transport state the visualizer follows.
//
// The output device pulls PCM on its own goroutine. The read position is kept
// in an atomic counter, so Elapsed can be read from the frame loop without
// locking.
package playback
