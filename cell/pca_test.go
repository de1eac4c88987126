package cell

import (
	"errors"
	"math"
	"testing"
)

func TestCompress_LosslessAtFullRank(t *testing.T) {
	tests := []string{"Hi", "Hello, World!", "aaaa", "The quick brown fox."}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			c, err := Compress(text, Dim)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if !almostEqual(c.CompressionRatio, 1) {
				t.Errorf("CompressionRatio = %v, want 1", c.CompressionRatio)
			}
			if c.VarianceExplained < 1-epsilon {
				t.Errorf("VarianceExplained = %v, want 1", c.VarianceExplained)
			}

			r, err := Decompress(c)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if r.Text != text {
				t.Errorf("Decompress text = %q, want %q", r.Text, text)
			}
			if r.Error > 1e-9 {
				t.Errorf("reconstruction error = %v, want ≈0", r.Error)
			}
		})
	}
}

func TestCompress_HiScenario(t *testing.T) {
	c, err := Compress("Hi", 8)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(c.Data) != 2 {
		t.Fatalf("compressed %d symbols, want 2", len(c.Data))
	}
	r, err := Decompress(c)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if r.Text != "Hi" || r.Error > 1e-9 {
		t.Errorf("got text %q, error %v", r.Text, r.Error)
	}
}

func TestCompress_MonotonicTradeoff(t *testing.T) {
	const text = "Hello, World! Round and round the vectors go."

	prevVar := math.Inf(-1)
	prevErr := math.Inf(1)
	for k := 1; k <= Dim; k++ {
		c, err := Compress(text, k)
		if err != nil {
			t.Fatalf("Compress(k=%d) failed: %v", k, err)
		}
		r, err := Decompress(c)
		if err != nil {
			t.Fatalf("Decompress(k=%d) failed: %v", k, err)
		}

		// As k grows, variance explained rises and error falls.
		if c.VarianceExplained < prevVar-epsilon {
			t.Errorf("k=%d: VarianceExplained %v decreased from %v", k, c.VarianceExplained, prevVar)
		}
		if r.Error > prevErr+epsilon {
			t.Errorf("k=%d: reconstruction error %v increased from %v", k, r.Error, prevErr)
		}
		if want := float64(Dim) / float64(k); !almostEqual(c.CompressionRatio, want) {
			t.Errorf("k=%d: CompressionRatio = %v, want %v", k, c.CompressionRatio, want)
		}

		prevVar = c.VarianceExplained
		prevErr = r.Error
	}
}

func TestCompress_DegenerateInput(t *testing.T) {
	// A constant input has zero variance; every rank explains all of it.
	c, err := Compress("aaaaaa", 2)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if !almostEqual(c.VarianceExplained, 1) {
		t.Errorf("VarianceExplained = %v, want 1", c.VarianceExplained)
	}
	r, err := Decompress(c)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if r.Text != "aaaaaa" {
		t.Errorf("Decompress text = %q", r.Text)
	}
}

func TestCompress_Validation(t *testing.T) {
	if _, err := Compress("", 4); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := Compress("hi", 0); !errors.Is(err, ErrVectorLength) {
		t.Errorf("k=0 error = %v", err)
	}
	if _, err := Compress("hi", 9); !errors.Is(err, ErrVectorLength) {
		t.Errorf("k=9 error = %v", err)
	}
}

func TestCompress_ComponentsOrthonormal(t *testing.T) {
	c, err := Compress("orthonormality check input", 4)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	for i := range c.Components {
		for j := range c.Components {
			dot, err := Dot(c.Components[i], c.Components[j])
			if err != nil {
				t.Fatalf("Dot failed: %v", err)
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(dot-want) > 1e-7 {
				t.Errorf("components %d·%d = %v, want %v", i, j, dot, want)
			}
		}
	}
}
