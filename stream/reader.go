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

// maxFramePayload bounds a single compressed frame, guarding against
// corrupt length fields.
const maxFramePayload = 1 << 26

// Reader reads sequences back out of a CW1 stream.
type Reader struct {
	r   io.Reader
	dec *zstd.Decoder
}

// NewReader creates a Reader and verifies the stream magic.
func NewReader(r io.Reader) (*Reader, error) {
	var got [4]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return nil, fmt.Errorf("%w: missing magic", ErrBadStream)
	}
	if got != magic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadStream, got[:])
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("stream: init decoder: %w", err)
	}
	return &Reader{r: r, dec: dec}, nil
}

// ReadSequence reads the next frame. It returns io.EOF cleanly at the
// end of the stream.
func (r *Reader) ReadSequence() (seq.Sequence, error) {
	var header [8]byte
	if _, err := io.ReadFull(r.r, header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return seq.Sequence{}, io.EOF
		}
		return seq.Sequence{}, fmt.Errorf("%w: truncated frame header", ErrBadStream)
	}

	n := binary.LittleEndian.Uint32(header[0:4])
	if n > maxFramePayload {
		return seq.Sequence{}, fmt.Errorf("%w: frame length %d", ErrBadStream, n)
	}
	wantCRC := binary.LittleEndian.Uint32(header[4:8])

	payload := make([]byte, n)
	if _, err := io.ReadFull(r.r, payload); err != nil {
		return seq.Sequence{}, fmt.Errorf("%w: truncated frame payload", ErrBadStream)
	}
	if got := crc32.Checksum(payload, crcTable); got != wantCRC {
		return seq.Sequence{}, fmt.Errorf("%w: got %08x, want %08x", ErrChecksum, got, wantCRC)
	}

	raw, err := r.dec.DecodeAll(payload, nil)
	if err != nil {
		return seq.Sequence{}, fmt.Errorf("%w: %v", ErrBadStream, err)
	}
	return seq.FromBytes(raw), nil
}

// Close releases the decoder. The underlying io.Reader is left open.
func (r *Reader) Close() {
	r.dec.Close()
}
