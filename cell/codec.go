package cell

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Dim is the dimension of the full cell space.
const Dim = 8

// GlyphBase is the first code point of the Unicode braille block; the
// glyph for byte value b is GlyphBase + b.
const GlyphBase rune = 0x2800

var (
	// ErrInvalidIndex reports a byte, glyph, or position outside the
	// codec's domain.
	ErrInvalidIndex = errors.New("cell: invalid index")

	// ErrVectorLength reports a vector whose length does not match the
	// expected dimension.
	ErrVectorLength = errors.New("cell: vector length mismatch")

	// ErrDegenerateVector reports a zero-norm vector passed to an
	// operation that is undefined at zero.
	ErrDegenerateVector = errors.New("cell: degenerate zero vector")
)

// Fixed forward and inverse symbol tables. The domain is exactly 256
// values, so direct array indexing replaces any map lookup and keeps
// the bijection checkable by sweep.
var (
	glyphForByte [256]rune
	byteForGlyph [256]byte
)

func init() {
	for i := 0; i < 256; i++ {
		glyphForByte[i] = GlyphBase + rune(i)
		byteForGlyph[i] = byte(i)
	}
}

// active reports whether a real coordinate rounds to a set bit.
func active(x float64) bool { return math.Round(x) != 0 }

// ByteToVector expands a byte into its 8-element binary vector; bit i
// of the value becomes coordinate i.
func ByteToVector(b byte) []float64 {
	vec := make([]float64, Dim)
	for i := 0; i < Dim; i++ {
		if b&(1<<i) != 0 {
			vec[i] = 1
		}
	}
	return vec
}

// VectorToByte collapses an 8-element vector back to a byte.
// Coordinates are rounded on use, so any real values are accepted.
func VectorToByte(vec []float64) (byte, error) {
	if len(vec) != Dim {
		return 0, fmt.Errorf("%w: got %d coordinates, want %d", ErrVectorLength, len(vec), Dim)
	}
	var b byte
	for i, x := range vec {
		if active(x) {
			b |= 1 << i
		}
	}
	return b, nil
}

// ByteToChar returns the glyph for a byte value.
func ByteToChar(b byte) rune { return glyphForByte[b] }

// CharToByte returns the byte value of a glyph, or ErrInvalidIndex for
// runes outside the glyph block.
func CharToByte(r rune) (byte, error) {
	if r < GlyphBase || r > GlyphBase+255 {
		return 0, fmt.Errorf("%w: rune %q is not a cell glyph", ErrInvalidIndex, r)
	}
	return byteForGlyph[r-GlyphBase], nil
}

// CharToVector returns the 8-element vector of a glyph.
func CharToVector(r rune) ([]float64, error) {
	b, err := CharToByte(r)
	if err != nil {
		return nil, err
	}
	return ByteToVector(b), nil
}

// VectorToChar returns the glyph of an 8-element vector.
func VectorToChar(vec []float64) (rune, error) {
	b, err := VectorToByte(vec)
	if err != nil {
		return 0, err
	}
	return ByteToChar(b), nil
}

// Encode maps each byte of the text to its glyph, one symbol per byte.
func Encode(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) * 3) // glyphs are 3 bytes in UTF-8
	for i := 0; i < len(text); i++ {
		sb.WriteRune(glyphForByte[text[i]])
	}
	return sb.String()
}

// Decode is the exact inverse of Encode. Any rune outside the glyph
// block fails with ErrInvalidIndex.
func Decode(symbols string) (string, error) {
	var sb strings.Builder
	for _, r := range symbols {
		b, err := CharToByte(r)
		if err != nil {
			return "", err
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// TextToVectors encodes the text's underlying byte sequence, one
// vector per byte.
func TextToVectors(text string) [][]float64 {
	out := make([][]float64, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = ByteToVector(text[i])
	}
	return out
}

// VectorsToText is the exact inverse of TextToVectors.
func VectorsToText(vecs [][]float64) (string, error) {
	buf := make([]byte, len(vecs))
	for i, v := range vecs {
		b, err := VectorToByte(v)
		if err != nil {
			return "", fmt.Errorf("vector %d: %w", i, err)
		}
		buf[i] = b
	}
	return string(buf), nil
}
