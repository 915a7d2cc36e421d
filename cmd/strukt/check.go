package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	strukt "github.com/reoring/strukt"
	"github.com/reoring/strukt/shape"
)

var checkCmd = &cobra.Command{
	Use:   "check --shape SHAPE FILE...",
	Short: "Validate documents against a shape descriptor",
	Long:  `Loads a YAML shape descriptor, compiles it into a validator, and applies it to each document. YAML documents are picked by extension (.yaml/.yml); everything else parses as JSON.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("shape", "s", "", "path to the YAML shape descriptor")
	_ = checkCmd.MarkFlagRequired("shape")
}

func runCheck(cmd *cobra.Command, args []string) error {
	shapePath, err := cmd.Flags().GetString("shape")
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(shapePath)
	if err != nil {
		return fmt.Errorf("reading shape: %w", err)
	}
	def, err := shape.Load(raw)
	if err != nil {
		return fmt.Errorf("loading shape: %w", err)
	}
	s, err := shape.Compile(def)
	if err != nil {
		return fmt.Errorf("compiling shape: %w", err)
	}

	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			cmd.PrintErrf("%s: %v\n", path, err)
			failed++
			continue
		}
		if err := checkDocument(s, path, data); err != nil {
			cmd.PrintErrf("%s: %v\n", path, err)
			failed++
			continue
		}
		cmd.Printf("%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(args))
	}
	return nil
}

func checkDocument(s strukt.Struct[any], path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		_, err := strukt.ParseYAML(s, data)
		return err
	default:
		_, err := strukt.ParseJSON(s, data)
		return err
	}
}
