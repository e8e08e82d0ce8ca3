// Package visualizer drives the per-frame stereo analysis.
//
// A [Driver] is ticked once per rendered frame. When the clock reports active
// playback and a full window fits in both channel buffers at the current
// offset, it transforms both windows and updates the published sources.
// Otherwise the previous sources are left as they are, so the display
// freezes instead of decaying.
package visualizer
