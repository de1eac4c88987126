package stream

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/cellwave/cellwave/seq"
)

func TestStream_RoundTrip(t *testing.T) {
	inputs := []seq.Sequence{
		seq.FromText("Hello, World!"),
		seq.Empty(),
		seq.FromBytes([]byte{0x00, 0xFF, 0x2A}),
		seq.FromText("the quick brown fox jumps over the lazy dog"),
	}

	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	for _, s := range inputs {
		if err := w.WriteSequence(s); err != nil {
			t.Fatalf("WriteSequence failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	for i, want := range inputs {
		got, err := r.ReadSequence()
		if err != nil {
			t.Fatalf("ReadSequence %d failed: %v", i, err)
		}
		if !got.Equals(want) {
			t.Errorf("frame %d: got %q, want %q", i, got.Text(), want.Text())
		}
	}
	if _, err := r.ReadSequence(); err != io.EOF {
		t.Fatalf("expected io.EOF at end of stream, got %v", err)
	}
}

func TestStream_BadMagic(t *testing.T) {
	if _, err := NewReader(bytes.NewReader([]byte("NOPE...."))); !errors.Is(err, ErrBadStream) {
		t.Fatalf("error = %v, want ErrBadStream", err)
	}
	if _, err := NewReader(bytes.NewReader(nil)); !errors.Is(err, ErrBadStream) {
		t.Fatalf("empty input error = %v, want ErrBadStream", err)
	}
}

func TestStream_ChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.WriteSequence(seq.FromText("payload under test")); err != nil {
		t.Fatalf("WriteSequence failed: %v", err)
	}
	w.Close()

	// Flip a payload byte past magic and frame header.
	data := buf.Bytes()
	data[len(data)-1] ^= 0xFF

	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()
	if _, err := r.ReadSequence(); !errors.Is(err, ErrChecksum) {
		t.Fatalf("error = %v, want ErrChecksum", err)
	}
}

func TestStream_TruncatedFrame(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.WriteSequence(seq.FromText("truncate me")); err != nil {
		t.Fatalf("WriteSequence failed: %v", err)
	}
	w.Close()

	data := buf.Bytes()[:buf.Len()-3]
	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()
	if _, err := r.ReadSequence(); !errors.Is(err, ErrBadStream) {
		t.Fatalf("error = %v, want ErrBadStream", err)
	}
}
