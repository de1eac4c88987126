package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cellwave/cellwave/cell"
)

var compressK int

var compressCmd = &cobra.Command{
	Use:   "compress [text]",
	Short: "PCA-compress text and report the accuracy trade-off",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(args)
		if err != nil {
			return err
		}
		c, err := cell.Compress(text, compressK)
		if err != nil {
			return err
		}
		r, err := cell.Decompress(c)
		if err != nil {
			return err
		}

		fmt.Printf("k:                  %d\n", c.K)
		fmt.Printf("compression ratio:  %.3f\n", c.CompressionRatio)
		fmt.Printf("variance explained: %.4f\n", c.VarianceExplained)
		fmt.Printf("reconstruction err: %.6f\n", r.Error)
		fmt.Printf("decoded:            %q\n", r.Text)
		if r.Text == text {
			fmt.Println("exact: yes")
		} else {
			fmt.Println("exact: no")
		}
		return nil
	},
}

func init() {
	compressCmd.Flags().IntVarP(&compressK, "dim", "k", cell.Dim, "target dimension 1..8")
	rootCmd.AddCommand(compressCmd)
}
