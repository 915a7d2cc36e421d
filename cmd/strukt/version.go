package main

import (
	"fmt"

	"github.com/spf13/cobra"

	strukt "github.com/reoring/strukt"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strukt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("strukt version %s\n", strukt.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
