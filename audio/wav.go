package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// WAV audio format codes.
const wavFormatPCM = 1

// maxWAVChunk bounds a single chunk body, guarding against corrupt
// length fields in untrusted files.
const maxWAVChunk = 1 << 26

// ErrWAV reports a malformed or unsupported WAV stream.
var ErrWAV = errors.New("audio: bad wav data")

// WriteWAV encodes the signal as a mono 16-bit PCM WAV stream.
// Samples are clipped to [-1, 1].
func WriteWAV(w io.Writer, sig *Signal) error {
	if sig == nil || sig.SampleRate <= 0 {
		return fmt.Errorf("%w: missing signal", ErrWAV)
	}

	dataLen := uint32(len(sig.Samples) * 2)
	var header [44]byte
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataLen)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], wavFormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], 1) // mono
	binary.LittleEndian.PutUint32(header[24:28], uint32(sig.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sig.SampleRate)*2) // byte rate
	binary.LittleEndian.PutUint16(header[32:34], 2)                        // block align
	binary.LittleEndian.PutUint16(header[34:36], 16)                       // bits per sample
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataLen)

	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	buf := make([]byte, 2*len(sig.Samples))
	for i, s := range sig.Samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(math.Round(s * 32767))
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
	}
	_, err := w.Write(buf)
	return err
}

// ReadWAV decodes a mono 16-bit PCM WAV stream back into a Signal.
func ReadWAV(r io.Reader) (*Signal, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWAV, err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%w: not a RIFF/WAVE stream", ErrWAV)
	}

	var sampleRate int
	var bitsPerSample, channels int

	// Walk chunks until the data chunk.
	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			return nil, fmt.Errorf("%w: truncated chunk header", ErrWAV)
		}
		id := string(chunk[0:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])
		if size > maxWAVChunk {
			return nil, fmt.Errorf("%w: %q chunk length %d", ErrWAV, id, size)
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("%w: fmt chunk too short", ErrWAV)
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w: truncated fmt chunk", ErrWAV)
			}
			if format := binary.LittleEndian.Uint16(body[0:2]); format != wavFormatPCM {
				return nil, fmt.Errorf("%w: unsupported format code %d", ErrWAV, format)
			}
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(body[14:16]))
			if channels != 1 || bitsPerSample != 16 {
				return nil, fmt.Errorf("%w: want mono 16-bit, got %d channels at %d bits", ErrWAV, channels, bitsPerSample)
			}

		case "data":
			if sampleRate == 0 {
				return nil, fmt.Errorf("%w: data chunk before fmt", ErrWAV)
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w: truncated data chunk", ErrWAV)
			}
			n := len(body) / 2
			samples := make([]float64, n)
			for i := 0; i < n; i++ {
				v := int16(binary.LittleEndian.Uint16(body[i*2:]))
				samples[i] = float64(v) / 32767
			}
			return &Signal{
				Samples:    samples,
				SampleRate: sampleRate,
				Duration:   float64(n) / float64(sampleRate),
			}, nil

		default:
			// Skip unknown chunks.
			if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
				return nil, fmt.Errorf("%w: truncated %q chunk", ErrWAV, id)
			}
		}
	}
}
