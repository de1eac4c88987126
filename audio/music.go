package audio

import "fmt"

// noteScale maps the 8 vector coordinates onto one octave of C major,
// C4 up to C5, low coordinate to low note. Active coordinates sound
// together as one chord per symbol.
var noteScale = [Bands]float64{
	261.63, // C4
	293.66, // D4
	329.63, // E4
	349.23, // F4
	392.00, // G4
	440.00, // A4
	493.88, // B4
	523.25, // C5
}

// MusicalConfig configures the musical variant. Frame length is driven
// by tempo: one beat per symbol.
type MusicalConfig struct {
	SampleRate    int
	BPM           float64
	Attack        float64
	Release       float64
	BaseAmplitude float64

	// ActivationThreshold as in Config; zero selects the default.
	ActivationThreshold float64
}

// DefaultMusicalConfig returns the standard 120 BPM configuration.
func DefaultMusicalConfig() MusicalConfig {
	return MusicalConfig{
		SampleRate:          44100,
		BPM:                 120,
		Attack:              0.010,
		Release:             0.030,
		BaseAmplitude:       0.5,
		ActivationThreshold: 0.20,
	}
}

// NewMusical constructs a Codec whose bands are the fixed note scale
// and whose frame duration is one beat at the configured tempo.
// Synthesis otherwise follows the same energy-normalized additive
// rule as the speech codec.
func NewMusical(cfg MusicalConfig) (*Codec, error) {
	if cfg.BPM <= 0 {
		return nil, fmt.Errorf("%w: bpm %v", ErrConfig, cfg.BPM)
	}
	thr := cfg.ActivationThreshold
	if thr == 0 {
		thr = 0.20
	}
	return newCodec(Config{
		SampleRate:          cfg.SampleRate,
		FrameDuration:       60 / cfg.BPM,
		Attack:              cfg.Attack,
		Release:             cfg.Release,
		BaseAmplitude:       cfg.BaseAmplitude,
		ActivationThreshold: thr,
	}, noteScale)
}
