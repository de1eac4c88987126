// Package config loads cellwave CLI settings. Precedence, lowest to
// highest: built-in defaults, environment variables (with an optional
// .env file), then an explicit YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable audio settings exposed to the CLI.
type Config struct {
	SampleRate          int     `yaml:"sample_rate"`
	FrameDuration       float64 `yaml:"frame_duration"`
	Attack              float64 `yaml:"attack"`
	Release             float64 `yaml:"release"`
	BaseAmplitude       float64 `yaml:"base_amplitude"`
	ActivationThreshold float64 `yaml:"activation_threshold"`
	BPM                 float64 `yaml:"bpm"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SampleRate:          44100,
		FrameDuration:       0.080,
		Attack:              0.005,
		Release:             0.005,
		BaseAmplitude:       0.5,
		ActivationThreshold: 0.20,
		BPM:                 120,
	}
}

// Load builds the effective configuration. path may be empty, in which
// case only defaults and the environment apply. A missing .env file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	// .env is optional sugar for the environment.
	_ = godotenv.Load()
	applyEnv(&cfg)

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.SampleRate = getEnvInt("CELLWAVE_SAMPLE_RATE", cfg.SampleRate)
	cfg.FrameDuration = getEnvFloat("CELLWAVE_FRAME_DURATION", cfg.FrameDuration)
	cfg.Attack = getEnvFloat("CELLWAVE_ATTACK", cfg.Attack)
	cfg.Release = getEnvFloat("CELLWAVE_RELEASE", cfg.Release)
	cfg.BaseAmplitude = getEnvFloat("CELLWAVE_BASE_AMPLITUDE", cfg.BaseAmplitude)
	cfg.ActivationThreshold = getEnvFloat("CELLWAVE_ACTIVATION_THRESHOLD", cfg.ActivationThreshold)
	cfg.BPM = getEnvFloat("CELLWAVE_BPM", cfg.BPM)
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
