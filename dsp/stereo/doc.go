// Package stereo splits interleaved two-channel PCM into independent,
// normalized left and right sample buffers.
//
// Buffers are created once per loaded track and treated as immutable by the
// analysis code that reads windows out of them.
package stereo
