package media

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/hajimehoshi/go-mp3"

	"github.com/cwbudde/algo-stereoviz/dsp/stereo"
)

// Format identifies a container/codec.
type Format int

const (
	FormatUnknown Format = iota
	FormatWAV
	FormatMP3
	FormatFLAC
	FormatVorbis
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatMP3:
		return "mp3"
	case FormatFLAC:
		return "flac"
	case FormatVorbis:
		return "vorbis"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return FormatWAV, nil
	case ".mp3":
		return FormatMP3, nil
	case ".flac":
		return FormatFLAC, nil
	case ".ogg", ".oga":
		return FormatVorbis, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// sniffLen is the number of leading bytes SniffFormat looks at.
const sniffLen = 12

// SniffFormat identifies a stream by its leading bytes.
func SniffFormat(header []byte) Format {
	switch {
	case len(header) >= 12 && bytes.HasPrefix(header, []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return FormatWAV
	case bytes.HasPrefix(header, []byte("fLaC")):
		return FormatFLAC
	case bytes.HasPrefix(header, []byte("OggS")):
		return FormatVorbis
	case bytes.HasPrefix(header, []byte("ID3")):
		return FormatMP3
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		// MPEG audio frame sync
		return FormatMP3
	default:
		return FormatUnknown
	}
}

// sniff reads the header of r, rewinds it and identifies the stream.
func sniff(r io.ReadSeeker) (Format, error) {
	header := make([]byte, sniffLen)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FormatUnknown, fmt.Errorf("media: read header: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return FormatUnknown, fmt.Errorf("media: rewind: %w", err)
	}
	return SniffFormat(header[:n]), nil
}

// PCM is decoded, interleaved signed 16-bit audio.
type PCM struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// Frames returns the number of complete frames.
func (p PCM) Frames() int {
	if p.Channels <= 0 {
		return 0
	}
	return len(p.Samples) / p.Channels
}

// Decode reads the whole stream in the given format.
func Decode(r io.ReadSeeker, format Format) (PCM, error) {
	switch format {
	case FormatWAV:
		return decodeWAV(r)
	case FormatMP3:
		return decodeMP3(r)
	case FormatFLAC:
		s, f, err := flac.Decode(r)
		if err != nil {
			return PCM{}, fmt.Errorf("media: decode flac: %w", err)
		}
		defer s.Close()
		return decodeStream(s, f)
	case FormatVorbis:
		s, f, err := vorbis.Decode(io.NopCloser(r))
		if err != nil {
			return PCM{}, fmt.Errorf("media: decode vorbis: %w", err)
		}
		defer s.Close()
		return decodeStream(s, f)
	default:
		return PCM{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func decodeWAV(r io.ReadSeeker) (PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return PCM{}, ErrInvalidWAV
	}

	isFloat := false
	switch dec.WavAudioFormat {
	case wavFormatPCM, wavFormatExtensible:
	case wavFormatFloat:
		if dec.BitDepth != 32 {
			return PCM{}, fmt.Errorf("%w: %d-bit float wav", ErrUnsupportedFormat, dec.BitDepth)
		}
		isFloat = true
	default:
		return PCM{}, fmt.Errorf("%w: wav encoding %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return PCM{}, fmt.Errorf("media: decode wav: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = buf.SourceBitDepth
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		if isFloat {
			// go-audio hands back the raw IEEE 754 bits.
			samples[i] = floatToInt16(float64(math.Float32frombits(uint32(v))))
			continue
		}
		s, err := toInt16(v, bitDepth)
		if err != nil {
			return PCM{}, err
		}
		samples[i] = s
	}

	return PCM{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Samples:    samples,
	}, nil
}

// WAVE format tags.
const (
	wavFormatPCM        = 1
	wavFormatFloat      = 3
	wavFormatExtensible = 0xFFFE
)

// floatToInt16 maps [-1, 1] to the full int16 range, clamping outside it.
func floatToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}
	x = max(-1, min(1, x))
	return int16(math.Round(x * math.MaxInt16))
}

func toInt16(v, bitDepth int) (int16, error) {
	switch bitDepth {
	case 8:
		return int16((v - 128) << 8), nil
	case 16:
		return int16(v), nil
	case 24:
		return int16(v >> 8), nil
	case 32:
		return int16(v >> 16), nil
	default:
		return 0, fmt.Errorf("media: unsupported wav bit depth: %d", bitDepth)
	}
}

// go-mp3 always produces 16-bit little-endian stereo.
const mp3Channels = 2

func decodeMP3(r io.Reader) (PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return PCM{}, fmt.Errorf("media: decode mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return PCM{}, fmt.Errorf("media: read mp3: %w", err)
	}

	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}

	return PCM{
		SampleRate: dec.SampleRate(),
		Channels:   mp3Channels,
		Samples:    samples,
	}, nil
}

// streamBlock is the number of frames pulled from a beep stream per call.
const streamBlock = 4096

// decodeStream drains a beep stream into interleaved PCM. Mono streams stay
// mono so that splitting rejects them like any other non-stereo input.
func decodeStream(s beep.Streamer, format beep.Format) (PCM, error) {
	channels := format.NumChannels
	if channels < 1 || channels > 2 {
		return PCM{}, fmt.Errorf("media: %d-channel stream: %w", channels, stereo.ErrNotStereo)
	}

	var samples []int16
	block := make([][2]float64, streamBlock)
	for {
		n, ok := s.Stream(block)
		for _, frame := range block[:n] {
			samples = append(samples, floatToInt16(frame[0]))
			if channels == 2 {
				samples = append(samples, floatToInt16(frame[1]))
			}
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return PCM{}, fmt.Errorf("media: decode stream: %w", err)
	}

	return PCM{
		SampleRate: int(format.SampleRate),
		Channels:   channels,
		Samples:    samples,
	}, nil
}
