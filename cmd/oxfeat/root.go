package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "oxfeat",
	Short: "Per-metal-site structural featurization for oxidation-state mining",
	Long: "Oxfeat extracts local-environment descriptor vectors for the metal sites\n" +
		"of crystal structures (CIF, extended XYZ, VASP POSCAR) and serializes them\n" +
		"for downstream oxidation-state prediction.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(featurizeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
