// Package audio implements the cross-modal bridge between 8-bit cell
// vectors and audio: one fixed-duration frame per symbol, one fixed
// frequency band per vector coordinate.
//
// Synthesis sums a sine oscillator per active coordinate with constant
// total energy; analysis recovers band activity per frame with the
// Goertzel recurrence, a single-bin spectral measure that is O(frame
// length) per band and needs no full transform for only 8 bins of
// interest. The transform is approximately invertible: quantization,
// band leakage, and thresholding make exact recovery likely but not
// guaranteed.
package audio

import (
	"errors"
	"fmt"
	"math"

	"github.com/cellwave/cellwave/cell"
)

// Bands is the number of frequency bands, one per vector coordinate.
const Bands = cell.Dim

// speechBands are the fixed per-coordinate frequencies in Hz, low
// coordinate to low band, spanning roughly 200 Hz to 4.8 kHz.
var speechBands = [Bands]float64{200, 400, 800, 1200, 1800, 2600, 3600, 4800}

// ErrConfig reports invalid codec configuration.
var ErrConfig = errors.New("audio: invalid config")

// Config holds the immutable settings of a Codec.
type Config struct {
	SampleRate    int     // samples per second
	FrameDuration float64 // seconds per symbol frame
	Attack        float64 // linear attack ramp, seconds
	Release       float64 // linear release ramp, seconds
	BaseAmplitude float64 // peak per-frame amplitude, 0..1

	// ActivationThreshold is the fraction of the loudest band's energy
	// a band must reach to count as active during analysis. 0.20 is a
	// tuning choice, not a physical constant.
	ActivationThreshold float64
}

// DefaultConfig returns the standard speech-band configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate:          44100,
		FrameDuration:       0.080,
		Attack:              0.005,
		Release:             0.005,
		BaseAmplitude:       0.5,
		ActivationThreshold: 0.20,
	}
}

// Codec renders vectors to audio frames and recovers them. A Codec is
// immutable after construction and safe for concurrent use.
type Codec struct {
	cfg   Config
	bands [Bands]float64
}

// New constructs a Codec with speech-band frequencies.
func New(cfg Config) (*Codec, error) {
	return newCodec(cfg, speechBands)
}

func newCodec(cfg Config, bands [Bands]float64) (*Codec, error) {
	switch {
	case cfg.SampleRate <= 0:
		return nil, fmt.Errorf("%w: sample rate %d", ErrConfig, cfg.SampleRate)
	case cfg.FrameDuration <= 0:
		return nil, fmt.Errorf("%w: frame duration %v", ErrConfig, cfg.FrameDuration)
	case cfg.BaseAmplitude <= 0 || cfg.BaseAmplitude > 1:
		return nil, fmt.Errorf("%w: base amplitude %v outside (0, 1]", ErrConfig, cfg.BaseAmplitude)
	case cfg.Attack < 0 || cfg.Release < 0:
		return nil, fmt.Errorf("%w: negative envelope duration", ErrConfig)
	case cfg.Attack+cfg.Release > cfg.FrameDuration:
		return nil, fmt.Errorf("%w: envelope %vs exceeds frame %vs", ErrConfig, cfg.Attack+cfg.Release, cfg.FrameDuration)
	case cfg.ActivationThreshold <= 0 || cfg.ActivationThreshold >= 1:
		return nil, fmt.Errorf("%w: activation threshold %v outside (0, 1)", ErrConfig, cfg.ActivationThreshold)
	}
	return &Codec{cfg: cfg, bands: bands}, nil
}

// Config returns the codec's configuration.
func (c *Codec) Config() Config { return c.cfg }

// BandFrequency returns the frequency of coordinate i.
func (c *Codec) BandFrequency(i int) (float64, error) {
	if i < 0 || i >= Bands {
		return 0, fmt.Errorf("%w: band %d", cell.ErrInvalidIndex, i)
	}
	return c.bands[i], nil
}

// Signal is a rendered audio block.
type Signal struct {
	Samples    []float64
	SampleRate int
	Duration   float64 // seconds
}

// frameLen returns the samples per symbol frame at the given rate.
func (c *Codec) frameLen(sampleRate int) int {
	return int(math.Round(c.cfg.FrameDuration * float64(sampleRate)))
}

// SynthesizeFromVectors renders one frame per vector. Each active
// coordinate contributes a sine at its band frequency, scaled by
// BaseAmplitude/sqrt(active count) so total energy is constant however
// many bits are set. An all-zero vector renders silence for its frame.
func (c *Codec) SynthesizeFromVectors(vecs [][]float64) (*Signal, error) {
	nf := c.frameLen(c.cfg.SampleRate)
	out := make([]float64, 0, nf*len(vecs))
	frame := make([]float64, nf)

	for i, v := range vecs {
		b, err := cell.VectorToByte(v)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		c.renderFrame(frame, b)
		out = append(out, frame...)
	}

	return &Signal{
		Samples:    out,
		SampleRate: c.cfg.SampleRate,
		Duration:   float64(len(out)) / float64(c.cfg.SampleRate),
	}, nil
}

// Synthesize renders the text, one frame per byte.
func (c *Codec) Synthesize(text string) (*Signal, error) {
	return c.SynthesizeFromVectors(cell.TextToVectors(text))
}

func (c *Codec) renderFrame(frame []float64, sym byte) {
	for i := range frame {
		frame[i] = 0
	}
	var freqs []float64
	for i := 0; i < Bands; i++ {
		if sym&(1<<i) != 0 {
			freqs = append(freqs, c.bands[i])
		}
	}
	if len(freqs) == 0 {
		return
	}

	amp := c.cfg.BaseAmplitude / math.Sqrt(float64(len(freqs)))
	rate := float64(c.cfg.SampleRate)
	attackN := int(c.cfg.Attack * rate)
	releaseN := int(c.cfg.Release * rate)

	for _, f := range freqs {
		step := 2 * math.Pi * f / rate
		for i := range frame {
			frame[i] += amp * math.Sin(step*float64(i))
		}
	}

	// Linear attack/release envelope.
	for i := 0; i < attackN && i < len(frame); i++ {
		frame[i] *= float64(i) / float64(attackN)
	}
	for i := 0; i < releaseN && i < len(frame); i++ {
		frame[len(frame)-1-i] *= float64(i) / float64(releaseN)
	}
}

// AnalyzeToVectors partitions the signal into fixed-duration frames
// and recovers one vector per frame. A band is active when its
// Goertzel energy reaches ActivationThreshold of the frame's loudest
// band. Frames are independent: frame i's output depends only on frame
// i's samples.
func (c *Codec) AnalyzeToVectors(samples []float64, sampleRate int) [][]float64 {
	nf := c.frameLen(sampleRate)
	if nf <= 0 || len(samples) == 0 {
		return nil
	}

	var out [][]float64
	for start := 0; start+nf <= len(samples); start += nf {
		out = append(out, c.analyzeFrame(samples[start:start+nf], sampleRate))
	}
	return out
}

// silenceFloor is the energy below which a frame counts as silent.
const silenceFloor = 1e-9

func (c *Codec) analyzeFrame(frame []float64, sampleRate int) []float64 {
	var energy [Bands]float64
	maxE := 0.0
	for i, f := range c.bands {
		energy[i] = goertzelEnergy(frame, f, sampleRate)
		if energy[i] > maxE {
			maxE = energy[i]
		}
	}

	vec := make([]float64, Bands)
	if maxE < silenceFloor {
		return vec
	}
	for i := range energy {
		if energy[i] >= c.cfg.ActivationThreshold*maxE {
			vec[i] = 1
		}
	}
	return vec
}

// goertzelEnergy computes single-bin spectral energy at the target
// frequency via the Goertzel recurrence, with the bin snapped to the
// nearest integer multiple of the frame's frequency resolution.
func goertzelEnergy(frame []float64, freq float64, sampleRate int) float64 {
	n := len(frame)
	if n == 0 {
		return 0
	}
	k := math.Round(float64(n) * freq / float64(sampleRate))
	omega := 2 * math.Pi * k / float64(n)
	coeff := 2 * math.Cos(omega)

	var q0, q1, q2 float64
	for _, x := range frame {
		q0 = coeff*q1 - q2 + x
		q2 = q1
		q1 = q0
	}
	power := q1*q1 + q2*q2 - coeff*q1*q2
	if power < 0 {
		power = 0
	}
	return power / float64(n*n)
}

// RoundTripReport summarizes a synthesize→analyze→decode cycle.
type RoundTripReport struct {
	Decoded    string
	MatchRate  float64 // fraction of symbols recovered exactly
	ExactMatch bool
}

// RoundTrip synthesizes the text, analyzes the rendered signal, and
// decodes the recovered vectors. The cycle is lossy by construction,
// so the report carries a match rate rather than a guarantee.
func (c *Codec) RoundTrip(text string) (*RoundTripReport, error) {
	sig, err := c.Synthesize(text)
	if err != nil {
		return nil, err
	}
	vecs := c.AnalyzeToVectors(sig.Samples, sig.SampleRate)
	decoded, err := cell.VectorsToText(vecs)
	if err != nil {
		return nil, err
	}

	matches := 0
	n := max(len(text), len(decoded))
	for i := 0; i < len(text) && i < len(decoded); i++ {
		if text[i] == decoded[i] {
			matches++
		}
	}

	rate := 1.0
	if n > 0 {
		rate = float64(matches) / float64(n)
	}
	return &RoundTripReport{
		Decoded:    decoded,
		MatchRate:  rate,
		ExactMatch: decoded == text,
	}, nil
}
