// Package pan estimates a per-bin stereo direction from a pair of spectra.
//
// Each bin keeps a smoothed energy value per channel. On every update the
// smoothed values are pulled toward the new bin energy with a one-pole step,
// and the bin's amplitude and direction are derived from them:
//
//	rev      += (amp - rev) * smoothing
//	amplitude = max(leftRev, rightRev)
//	direction = (rightRev - leftRev) / max(amplitude, floor)
//
// Positive directions lean right, negative lean left. The floor keeps quiet
// bins from producing large or undefined directions.
package pan
