package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cellwave %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
