package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cellwave/cellwave/audio"
	"github.com/cellwave/cellwave/internal/config"
)

const version = "0.3.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:          "cellwave",
	Short:        "cellwave — bit-exact bridge between text, 8-bit vectors, and audio",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `cellwave treats every 8-bit pattern as a byte, a braille glyph, a binary
vector, and a short audio frame, with lossless conversions between the views
plus PCA compression and a sub-space algebra.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadAudioCodec builds the speech-band codec from the effective
// configuration.
func loadAudioCodec() (*audio.Codec, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return audio.New(audio.Config{
		SampleRate:          cfg.SampleRate,
		FrameDuration:       cfg.FrameDuration,
		Attack:              cfg.Attack,
		Release:             cfg.Release,
		BaseAmplitude:       cfg.BaseAmplitude,
		ActivationThreshold: cfg.ActivationThreshold,
	})
}

// textArg returns the joined arguments, or stdin when none are given.
func textArg(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// parseDots parses dot positions given either as one digit run ("1356")
// or as separate arguments.
func parseDots(args []string) ([]int, error) {
	var dots []int
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("bad dot %q", arg)
		}
		if n >= 10 {
			// A digit run like "1356" names one dot per digit.
			for _, c := range arg {
				dots = append(dots, int(c-'0'))
			}
			continue
		}
		dots = append(dots, n)
	}
	return dots, nil
}
