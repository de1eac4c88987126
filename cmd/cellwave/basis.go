package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cellwave/cellwave/basis"
	"github.com/cellwave/cellwave/cell"
)

var basisCmd = &cobra.Command{
	Use:   "basis",
	Short: "Inspect sub-spaces of the 8-bit cell space",
}

var basisLabelCmd = &cobra.Command{
	Use:   "label <dots>",
	Short: "Print the machine label of a dot set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dots, err := parseDots(args)
		if err != nil {
			return err
		}
		b, err := basis.New(dots...)
		if err != nil {
			return err
		}
		fmt.Println(b.MachineLabel())
		return nil
	},
}

var basisParseCmd = &cobra.Command{
	Use:   "parse <label>",
	Short: "Parse a machine label and describe the basis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := basis.FromMachineLabel(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("label:     %s\n", b.MachineLabel())
		fmt.Printf("dimension: %d\n", b.Dim())
		fmt.Printf("dots:      %v\n", b.Dots())
		fmt.Printf("mask:      %#02x\n", b.Mask())
		return nil
	},
}

var basisEnumCmd = &cobra.Command{
	Use:   "enum <dots>",
	Short: "Enumerate every element of a sub-space as glyphs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dots, err := parseDots(args)
		if err != nil {
			return err
		}
		b, err := basis.New(dots...)
		if err != nil {
			return err
		}
		for _, v := range b.Enumerate() {
			fmt.Printf("%3d  %c\n", v, cell.ByteToChar(v))
		}
		return nil
	},
}

func init() {
	basisCmd.AddCommand(basisLabelCmd, basisParseCmd, basisEnumCmd)
	rootCmd.AddCommand(basisCmd)
}
