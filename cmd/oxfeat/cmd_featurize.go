package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mofminer/oxfeat/internal/config"
	"github.com/mofminer/oxfeat/internal/featurize"
	"github.com/mofminer/oxfeat/internal/logging"
	"github.com/mofminer/oxfeat/internal/output"
	"github.com/mofminer/oxfeat/internal/pipeline"

	// Register output format implementations.
	_ "github.com/mofminer/oxfeat/internal/output/gobfile"
	_ "github.com/mofminer/oxfeat/internal/output/ndjson"
)

var (
	featurizeOutdir string
	featurizeFormat string
)

var featurizeCmd = &cobra.Command{
	Use:   "featurize STRUCTURE...",
	Short: "Featurize the metal sites of one or more structure files",
	Long: "Featurize runs the descriptor pipeline over each structure file in turn.\n" +
		"A failed structure is logged and skipped; it never aborts the batch.\n" +
		"The command fails only when no structure completes.",
	Args: cobra.MinimumNArgs(1),
	RunE: runFeaturize,
}

func init() {
	featurizeCmd.Flags().StringVarP(&featurizeOutdir, "out", "o", "", "output/log directory (default from config)")
	featurizeCmd.Flags().StringVarP(&featurizeFormat, "format", "f", "", "output format: gob or ndjson (default from config)")
}

func runFeaturize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if featurizeOutdir != "" {
		cfg.Output.Dir = featurizeOutdir
	}
	if featurizeFormat != "" {
		cfg.Output.Format = featurizeFormat
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	logFile, err := logging.Init(cfg.Output.Dir, logging.ParseLevel(cfg.Output.LogLevel))
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctor, err := output.Get(cfg.Output.Format)
	if err != nil {
		return err
	}

	opts := []pipeline.Option{
		pipeline.WithWriter(ctor()),
		pipeline.WithFeaturizer(featurize.DefaultWithCutoff(cfg.Engine.Cutoff)),
	}
	results := pipeline.Batch(cmd.Context(), args, cfg.Output.Dir, opts...)

	completed := 0
	for _, res := range results {
		if res.OK() {
			completed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d metal sites -> %s\n",
				res.Path, res.MetalSites, res.OutputPath)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s (%v)\n", res.Path, res.Status, res.Err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "featurized %d/%d structures\n", completed, len(results))

	if completed == 0 {
		return fmt.Errorf("no structure completed")
	}
	return nil
}
