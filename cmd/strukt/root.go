package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strukt",
	Short: "strukt validates JSON and YAML documents against shape descriptors",
	Long:  `strukt checks untrusted documents against a declarative shape descriptor and reports what failed, where, and with which value.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
