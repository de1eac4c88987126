package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cellwave/cellwave/seq"
	"github.com/cellwave/cellwave/stream"
)

var packOut string

var packCmd = &cobra.Command{
	Use:   "pack [text...]",
	Short: "Store one sequence per argument in a CW1 container",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Create(packOut)
		if err != nil {
			return err
		}
		defer f.Close()

		w, err := stream.NewWriter(f)
		if err != nil {
			return err
		}
		defer w.Close()

		for _, text := range args {
			if err := w.WriteSequence(seq.FromText(text)); err != nil {
				return err
			}
		}
		fmt.Printf("wrote %d sequences to %s\n", len(args), packOut)
		return nil
	},
}

var unpackCmd = &cobra.Command{
	Use:   "unpack <in.cw1>",
	Short: "List the sequences stored in a CW1 container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		r, err := stream.NewReader(f)
		if err != nil {
			return err
		}
		defer r.Close()

		for i := 0; ; i++ {
			s, err := r.ReadSequence()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("%3d  len=%-4d hash=%08x  %s\n", i, s.Length(), s.Hash(), s.Glyphs())
		}
	},
}

func init() {
	packCmd.Flags().StringVarP(&packOut, "out", "o", "out.cw1", "output container path")
	rootCmd.AddCommand(packCmd, unpackCmd)
}
