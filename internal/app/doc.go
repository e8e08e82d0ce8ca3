// Package app wires the decoder, playback transport, visualizer driver and
// renderer into an ebiten game.
package app
