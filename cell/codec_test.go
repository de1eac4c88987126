package cell

import (
	"errors"
	"testing"
)

// ============================================================
// Bijection
// ============================================================

func TestBijection_ByteVector(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		vec := ByteToVector(b)
		if len(vec) != Dim {
			t.Fatalf("ByteToVector(%d) has length %d", i, len(vec))
		}
		back, err := VectorToByte(vec)
		if err != nil {
			t.Fatalf("VectorToByte failed for %d: %v", i, err)
		}
		if back != b {
			t.Errorf("round trip %d -> %v -> %d", b, vec, back)
		}
	}
}

func TestBijection_GlyphVector(t *testing.T) {
	seen := make(map[rune]bool, 256)
	for i := 0; i < 256; i++ {
		g := ByteToChar(byte(i))
		if g != GlyphBase+rune(i) {
			t.Fatalf("ByteToChar(%d) = %q", i, g)
		}
		if seen[g] {
			t.Fatalf("glyph %q emitted twice", g)
		}
		seen[g] = true

		vec, err := CharToVector(g)
		if err != nil {
			t.Fatalf("CharToVector(%q) failed: %v", g, err)
		}
		back, err := VectorToChar(vec)
		if err != nil {
			t.Fatalf("VectorToChar failed: %v", err)
		}
		if back != g {
			t.Errorf("round trip %q -> %v -> %q", g, vec, back)
		}
	}
}

func TestCharToByte_InvalidIndex(t *testing.T) {
	for _, r := range []rune{'a', ' ', 0x27FF, 0x2900, 0} {
		if _, err := CharToByte(r); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("CharToByte(%q) error = %v, want ErrInvalidIndex", r, err)
		}
	}
}

func TestVectorToByte_Rounding(t *testing.T) {
	vec := []float64{0.9, 0.1, 1.2, -0.2, 0.49, 0.51, 0, 2}
	b, err := VectorToByte(vec)
	if err != nil {
		t.Fatalf("VectorToByte failed: %v", err)
	}
	// Coordinates rounding to a nonzero value are active.
	if want := byte(0b10100101); b != want {
		t.Errorf("VectorToByte = %#08b, want %#08b", b, want)
	}
}

func TestVectorToByte_LengthMismatch(t *testing.T) {
	if _, err := VectorToByte([]float64{1, 0, 1}); !errors.Is(err, ErrVectorLength) {
		t.Fatalf("error = %v, want ErrVectorLength", err)
	}
}

// ============================================================
// Text round trips
// ============================================================

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []string{
		"",
		"Hi",
		"Hello, World!",
		"a\x00b\xff",
		"héllo ⠿ 世界", // multi-byte UTF-8 goes byte-for-byte
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			enc := Encode(text)
			dec, err := Decode(enc)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if dec != text {
				t.Errorf("Decode(Encode(%q)) = %q", text, dec)
			}

			vecs := TextToVectors(text)
			if len(vecs) != len(text) {
				t.Fatalf("TextToVectors produced %d vectors for %d bytes", len(vecs), len(text))
			}
			back, err := VectorsToText(vecs)
			if err != nil {
				t.Fatalf("VectorsToText failed: %v", err)
			}
			if back != text {
				t.Errorf("VectorsToText(TextToVectors(%q)) = %q", text, back)
			}
		})
	}
}

func TestEncode_SymbolCount(t *testing.T) {
	enc := Encode("Hi")
	n := 0
	for range enc {
		n++
	}
	if n != 2 {
		t.Fatalf("Encode(\"Hi\") produced %d symbols, want 2", n)
	}
}

func TestDecode_RejectsForeignRunes(t *testing.T) {
	if _, err := Decode("⠁x⠃"); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("error = %v, want ErrInvalidIndex", err)
	}
}

// ============================================================
// Grade-1 letters
// ============================================================

func TestGradeOne_RoundTrip(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	enc := GradeOneEncode(text)
	if dec := GradeOneDecode(enc); dec != text {
		t.Fatalf("GradeOneDecode = %q", dec)
	}
}

func TestGradeOne_KnownCells(t *testing.T) {
	tests := []struct {
		letter rune
		glyph  rune
	}{
		{'a', '⠁'},
		{'h', '⠓'},
		{'w', '⠺'},
		{'z', '⠵'},
		{' ', '⠀'},
		{'A', '⠁'}, // uppercase folds
		{'%', '⠀'}, // uncovered runes fall back to blank
	}
	for _, tt := range tests {
		if got := LetterToGlyph(tt.letter); got != tt.glyph {
			t.Errorf("LetterToGlyph(%q) = %q, want %q", tt.letter, got, tt.glyph)
		}
	}
}
