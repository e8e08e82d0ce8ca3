// Package media decodes audio files into interleaved 16-bit PCM and builds
// the stereo tracks the visualizer and the playback transport share.
//
// WAV is decoded with go-audio/wav, MP3 with hajimehoshi/go-mp3, FLAC and Ogg
// Vorbis with gopxl/beep. The format is picked from the file extension, or
// from the header bytes when the extension is unknown.
package media
