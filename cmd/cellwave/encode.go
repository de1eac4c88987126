package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cellwave/cellwave/cell"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text as cell glyphs, one symbol per byte",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(args)
		if err != nil {
			return err
		}
		fmt.Println(cell.Encode(text))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [glyphs]",
	Short: "Decode cell glyphs back to text",
	RunE: func(cmd *cobra.Command, args []string) error {
		glyphs, err := textArg(args)
		if err != nil {
			return err
		}
		text, err := cell.Decode(glyphs)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [text]",
	Short: "Describe the byte distribution of a text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(args)
		if err != nil {
			return err
		}
		d, err := cell.AnalyzeDistribution(cell.TextToVectors(text))
		if err != nil {
			return err
		}
		fmt.Printf("symbols:           %d\n", len(text))
		fmt.Printf("distinct patterns: %d\n", d.DistinctPatterns)
		fmt.Printf("mean active bits:  %.3f\n", d.MeanActiveBits)
		fmt.Printf("entropy:           %.3f bits\n", d.Entropy)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd, decodeCmd, statsCmd)
}
