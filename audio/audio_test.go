package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/cellwave/cellwave/cell"
)

func testConfig() Config {
	cfg := DefaultConfig()
	// Smaller frames keep the tests quick without touching the math.
	cfg.SampleRate = 8000
	cfg.FrameDuration = 0.064
	cfg.Attack = 0.004
	cfg.Release = 0.004
	return cfg
}

func mustCodec(t *testing.T, cfg Config) *Codec {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

// ============================================================
// Configuration
// ============================================================

func TestNew_ConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"zero frame", func(c *Config) { c.FrameDuration = 0 }},
		{"amplitude over 1", func(c *Config) { c.BaseAmplitude = 1.5 }},
		{"zero amplitude", func(c *Config) { c.BaseAmplitude = 0 }},
		{"negative attack", func(c *Config) { c.Attack = -1 }},
		{"envelope exceeds frame", func(c *Config) { c.Attack = 1; c.Release = 1 }},
		{"threshold at 0", func(c *Config) { c.ActivationThreshold = 0 }},
		{"threshold at 1", func(c *Config) { c.ActivationThreshold = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := New(cfg); !errors.Is(err, ErrConfig) {
				t.Fatalf("error = %v, want ErrConfig", err)
			}
		})
	}
}

// ============================================================
// Synthesis
// ============================================================

func TestSynthesize_FrameLayout(t *testing.T) {
	c := mustCodec(t, testConfig())
	sig, err := c.Synthesize("Hi")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	nf := int(math.Round(c.Config().FrameDuration * float64(c.Config().SampleRate)))
	if len(sig.Samples) != 2*nf {
		t.Errorf("got %d samples, want %d (2 frames)", len(sig.Samples), 2*nf)
	}
	if sig.SampleRate != c.Config().SampleRate {
		t.Errorf("SampleRate = %d", sig.SampleRate)
	}
	wantDur := float64(2*nf) / float64(c.Config().SampleRate)
	if math.Abs(sig.Duration-wantDur) > 1e-9 {
		t.Errorf("Duration = %v, want %v", sig.Duration, wantDur)
	}
}

func TestSynthesize_ZeroVectorIsSilence(t *testing.T) {
	c := mustCodec(t, testConfig())
	sig, err := c.SynthesizeFromVectors([][]float64{make([]float64, cell.Dim)})
	if err != nil {
		t.Fatalf("SynthesizeFromVectors failed: %v", err)
	}
	for i, s := range sig.Samples {
		if s != 0 {
			t.Fatalf("sample %d = %v, want pure silence", i, s)
		}
	}
}

func TestSynthesize_EnergyInvariance(t *testing.T) {
	cfg := testConfig()
	cfg.Attack = 0
	cfg.Release = 0
	c := mustCodec(t, cfg)

	// Peak per-oscillator amplitude must be BaseAmplitude/sqrt(n)
	// regardless of how many coordinates are active.
	for _, sym := range []byte{0x01, 0x03, 0x0F, 0xFF} {
		vec := cell.ByteToVector(sym)
		sig, err := c.SynthesizeFromVectors([][]float64{vec})
		if err != nil {
			t.Fatalf("SynthesizeFromVectors failed: %v", err)
		}

		n := 0
		for i := 0; i < cell.Dim; i++ {
			if sym&(1<<i) != 0 {
				n++
			}
		}
		perOsc := c.Config().BaseAmplitude / math.Sqrt(float64(n))

		// With one oscillator the waveform peak reaches the
		// per-oscillator amplitude; with several it never exceeds the
		// coherent sum.
		peak := 0.0
		for _, s := range sig.Samples {
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
		if n == 1 && math.Abs(peak-perOsc) > 0.01 {
			t.Errorf("sym %#02x: peak %v, want ≈%v", sym, peak, perOsc)
		}
		if peak > float64(n)*perOsc+1e-9 {
			t.Errorf("sym %#02x: peak %v exceeds coherent bound %v", sym, peak, float64(n)*perOsc)
		}
	}
}

func TestSynthesize_RejectsBadVector(t *testing.T) {
	c := mustCodec(t, testConfig())
	if _, err := c.SynthesizeFromVectors([][]float64{{1, 0}}); !errors.Is(err, cell.ErrVectorLength) {
		t.Fatalf("error = %v, want ErrVectorLength", err)
	}
}

// ============================================================
// Analysis
// ============================================================

func TestAnalyze_RecoversSingleBand(t *testing.T) {
	c := mustCodec(t, testConfig())
	for i := 0; i < Bands; i++ {
		sym := byte(1) << i
		sig, err := c.SynthesizeFromVectors([][]float64{cell.ByteToVector(sym)})
		if err != nil {
			t.Fatalf("synthesize failed: %v", err)
		}
		vecs := c.AnalyzeToVectors(sig.Samples, sig.SampleRate)
		if len(vecs) != 1 {
			t.Fatalf("band %d: got %d frames, want 1", i, len(vecs))
		}
		got, err := cell.VectorToByte(vecs[0])
		if err != nil {
			t.Fatalf("VectorToByte failed: %v", err)
		}
		if got != sym {
			t.Errorf("band %d: recovered %#08b, want %#08b", i, got, sym)
		}
	}
}

func TestAnalyze_SilenceIsZeroVector(t *testing.T) {
	c := mustCodec(t, testConfig())
	nf := int(math.Round(c.Config().FrameDuration * float64(c.Config().SampleRate)))
	vecs := c.AnalyzeToVectors(make([]float64, nf*3), c.Config().SampleRate)
	if len(vecs) != 3 {
		t.Fatalf("got %d frames, want 3", len(vecs))
	}
	for i, v := range vecs {
		for j, x := range v {
			if x != 0 {
				t.Fatalf("frame %d coordinate %d = %v, want 0", i, j, x)
			}
		}
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	c := mustCodec(t, testConfig())
	if vecs := c.AnalyzeToVectors(nil, 8000); vecs != nil {
		t.Errorf("got %d frames for empty input", len(vecs))
	}
}

// ============================================================
// Round trip
// ============================================================

func TestRoundTrip_ShortASCII(t *testing.T) {
	c := mustCodec(t, testConfig())
	for _, text := range []string{"Hi", "A", "ok"} {
		r, err := c.RoundTrip(text)
		if err != nil {
			t.Fatalf("RoundTrip(%q) failed: %v", text, err)
		}
		if !r.ExactMatch || r.MatchRate != 1 {
			t.Errorf("RoundTrip(%q) = %q, rate %v", text, r.Decoded, r.MatchRate)
		}
	}
}

func TestRoundTrip_EmptyText(t *testing.T) {
	c := mustCodec(t, testConfig())
	r, err := c.RoundTrip("")
	if err != nil {
		t.Fatalf("RoundTrip failed: %v", err)
	}
	if !r.ExactMatch || r.MatchRate != 1 {
		t.Errorf("empty round trip = %+v", r)
	}
}

// ============================================================
// Musical variant
// ============================================================

func TestMusical_TempoDrivesFrameLength(t *testing.T) {
	cfg := DefaultMusicalConfig()
	cfg.SampleRate = 8000
	c, err := NewMusical(cfg)
	if err != nil {
		t.Fatalf("NewMusical failed: %v", err)
	}
	if got := c.Config().FrameDuration; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("frame duration at 120 BPM = %v, want 0.5", got)
	}

	sig, err := c.Synthesize("x")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if len(sig.Samples) != 4000 {
		t.Errorf("one beat at 8 kHz = %d samples, want 4000", len(sig.Samples))
	}

	if _, err := NewMusical(MusicalConfig{SampleRate: 8000, BPM: 0, BaseAmplitude: 0.5}); !errors.Is(err, ErrConfig) {
		t.Errorf("zero BPM error = %v", err)
	}
}

func TestMusical_BandsAreNotes(t *testing.T) {
	c, err := NewMusical(DefaultMusicalConfig())
	if err != nil {
		t.Fatalf("NewMusical failed: %v", err)
	}
	f, err := c.BandFrequency(5)
	if err != nil {
		t.Fatalf("BandFrequency failed: %v", err)
	}
	if f != 440 {
		t.Errorf("coordinate 5 = %v Hz, want A4 = 440", f)
	}
	if _, err := c.BandFrequency(8); !errors.Is(err, cell.ErrInvalidIndex) {
		t.Errorf("out-of-range band error = %v", err)
	}
}

// ============================================================
// WAV
// ============================================================

func TestWAV_RoundTrip(t *testing.T) {
	c := mustCodec(t, testConfig())
	sig, err := c.Synthesize("Hi")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteWAV(&buf, sig); err != nil {
		t.Fatalf("WriteWAV failed: %v", err)
	}

	back, err := ReadWAV(&buf)
	if err != nil {
		t.Fatalf("ReadWAV failed: %v", err)
	}
	if back.SampleRate != sig.SampleRate || len(back.Samples) != len(sig.Samples) {
		t.Fatalf("shape mismatch: %d/%d samples at %d/%d Hz",
			len(back.Samples), len(sig.Samples), back.SampleRate, sig.SampleRate)
	}

	// 16-bit quantization still leaves cell analysis intact.
	vecs := c.AnalyzeToVectors(back.Samples, back.SampleRate)
	decoded, err := cell.VectorsToText(vecs)
	if err != nil {
		t.Fatalf("VectorsToText failed: %v", err)
	}
	if decoded != "Hi" {
		t.Errorf("decoded %q after WAV round trip", decoded)
	}
}

func TestReadWAV_Malformed(t *testing.T) {
	if _, err := ReadWAV(bytes.NewReader([]byte("not a wav"))); !errors.Is(err, ErrWAV) {
		t.Fatalf("error = %v, want ErrWAV", err)
	}
}

// riffChunk assembles a chunk with the given id, declared size, and
// body for malformed-file fixtures.
func riffChunk(id string, size uint32, body []byte) []byte {
	out := append([]byte(id), 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(out[4:8], size)
	return append(out, body...)
}

func TestReadWAV_ShortFmtChunk(t *testing.T) {
	// A fmt chunk shorter than the 16-byte PCM layout must fail
	// cleanly, not panic on a slice bound.
	data := append([]byte("RIFF\x24\x00\x00\x00WAVE"), riffChunk("fmt ", 4, make([]byte, 4))...)
	if _, err := ReadWAV(bytes.NewReader(data)); !errors.Is(err, ErrWAV) {
		t.Fatalf("error = %v, want ErrWAV", err)
	}
}

func TestReadWAV_OversizedChunkLength(t *testing.T) {
	// A corrupt length field must be rejected before allocation.
	data := append([]byte("RIFF\xff\xff\xff\xffWAVE"), riffChunk("fmt ", 0xFFFFFFF0, nil)...)
	if _, err := ReadWAV(bytes.NewReader(data)); !errors.Is(err, ErrWAV) {
		t.Fatalf("error = %v, want ErrWAV", err)
	}
}
