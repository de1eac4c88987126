package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cellwave/cellwave/audio"
	"github.com/cellwave/cellwave/cell"
	"github.com/cellwave/cellwave/internal/config"
)

var (
	synthOut     string
	synthMusical bool
)

var synthCmd = &cobra.Command{
	Use:   "synth [text]",
	Short: "Render text to a WAV file, one frame per byte",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(args)
		if err != nil {
			return err
		}
		codec, err := selectCodec(synthMusical)
		if err != nil {
			return err
		}
		sig, err := codec.Synthesize(text)
		if err != nil {
			return err
		}

		f, err := os.Create(synthOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := audio.WriteWAV(f, sig); err != nil {
			return err
		}
		fmt.Printf("wrote %s: %.2fs at %d Hz\n", synthOut, sig.Duration, sig.SampleRate)
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <in.wav>",
	Short: "Recover text from a rendered WAV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		sig, err := audio.ReadWAV(f)
		if err != nil {
			return err
		}

		codec, err := loadAudioCodec()
		if err != nil {
			return err
		}
		vecs := codec.AnalyzeToVectors(sig.Samples, sig.SampleRate)
		text, err := cell.VectorsToText(vecs)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [text]",
	Short: "Synthesize, analyze, and compare against the input",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(args)
		if err != nil {
			return err
		}
		codec, err := loadAudioCodec()
		if err != nil {
			return err
		}
		r, err := codec.RoundTrip(text)
		if err != nil {
			return err
		}
		fmt.Printf("decoded:    %q\n", r.Decoded)
		fmt.Printf("match rate: %.1f%%\n", r.MatchRate*100)
		fmt.Printf("exact:      %v\n", r.ExactMatch)
		return nil
	},
}

// selectCodec picks the speech or musical codec from the effective
// configuration.
func selectCodec(musical bool) (*audio.Codec, error) {
	if !musical {
		return loadAudioCodec()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return audio.NewMusical(audio.MusicalConfig{
		SampleRate:          cfg.SampleRate,
		BPM:                 cfg.BPM,
		Attack:              cfg.Attack,
		Release:             cfg.Release,
		BaseAmplitude:       cfg.BaseAmplitude,
		ActivationThreshold: cfg.ActivationThreshold,
	})
}

func init() {
	synthCmd.Flags().StringVarP(&synthOut, "out", "o", "out.wav", "output WAV path")
	synthCmd.Flags().BoolVarP(&synthMusical, "musical", "m", false, "use the musical note scale")
	rootCmd.AddCommand(synthCmd, analyzeCmd, roundtripCmd)
}
