// Package level measures the level and stereo image of a pair of channel
// buffers.
//
// Measurements are taken in a single pass over the common length of the two
// channels. Silent inputs give zero linear values and -Inf decibel values.
package level
