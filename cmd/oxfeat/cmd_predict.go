package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mofminer/oxfeat/internal/config"
	"github.com/mofminer/oxfeat/internal/output/gobfile"
	"github.com/mofminer/oxfeat/internal/predict"
)

var predictModelPath string

var predictCmd = &cobra.Command{
	Use:   "predict FEATURES.pkl...",
	Short: "Predict oxidation states from serialized feature tables",
	Long: "Predict loads feature tables written by `oxfeat featurize` and scores\n" +
		"each metal site with the configured ONNX oxidation-state classifier.",
	Args: cobra.MinimumNArgs(1),
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringVarP(&predictModelPath, "model", "m", "", "path to ONNX classifier (default from config)")
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if predictModelPath != "" {
		cfg.Predict.ModelPath = predictModelPath
	}

	p, err := predict.New(cfg.Predict.ModelPath, cfg.Predict.RuntimePath)
	if err != nil {
		return err
	}
	defer p.Close()

	for _, path := range args {
		table, err := gobfile.Read(path)
		if err != nil {
			return err
		}

		labels := make([]string, 0, len(table))
		for label := range table {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		for _, label := range labels {
			pred, err := p.Predict(table[label].Feature)
			if err != nil {
				return fmt.Errorf("%s: %s: %w", path, label, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: +%d (confidence %.3f)\n",
				path, label, pred.State, pred.Confidence)
		}
	}
	return nil
}
