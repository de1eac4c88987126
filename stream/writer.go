// Package stream persists encoded symbol sequences in the CW1
// container: a magic header followed by length-prefixed frames, each
// carrying a CRC-checked, zstd-compressed sequence payload.
//
// Frame layout, all integers little-endian:
//
//	[4] magic "CW1\x00"        (once, at stream start)
//	[4] compressed length n
//	[4] CRC-32 (IEEE) of the compressed payload
//	[n] zstd-compressed symbol bytes
//
// Frames are independent: each decodes to one Sequence, and a corrupt
// frame fails without touching its neighbours.
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/cellwave/cellwave/seq"
)

// magic identifies a CW1 stream.
var magic = [4]byte{'C', 'W', '1', 0}

var (
	// ErrBadStream reports a malformed container.
	ErrBadStream = errors.New("stream: bad container")

	// ErrChecksum reports a frame whose payload fails CRC
	// verification.
	ErrChecksum = errors.New("stream: checksum mismatch")
)

// crcTable is the IEEE CRC-32 table.
var crcTable = crc32.MakeTable(crc32.IEEE)

// Writer writes sequences as CW1 frames.
type Writer struct {
	w   io.Writer
	enc *zstd.Encoder
}

// NewWriter creates a Writer and emits the stream magic.
func NewWriter(w io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("stream: init encoder: %w", err)
	}
	if _, err := w.Write(magic[:]); err != nil {
		enc.Close()
		return nil, err
	}
	return &Writer{w: w, enc: enc}, nil
}

// WriteSequence appends one sequence as a frame.
func (w *Writer) WriteSequence(s seq.Sequence) error {
	payload := w.enc.EncodeAll(s.Bytes(), nil)

	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(len(payload)))
	binary.LittleEndian.PutUint32(header[4:8], crc32.Checksum(payload, crcTable))
	if _, err := w.w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.w.Write(payload)
	return err
}

// Close releases the encoder. The underlying io.Writer is left open.
func (w *Writer) Close() error {
	w.enc.Close()
	return nil
}
