// Package config resolves oxfeat settings from an optional YAML file and
// OXFEAT_* environment variables, env winning over file, file over
// defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all oxfeat configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Engine  EngineConfig  `yaml:"engine"`
	Predict PredictConfig `yaml:"predict"`
}

// OutputConfig holds output and logging destination settings.
type OutputConfig struct {
	Dir      string `yaml:"dir"`       // output/log directory
	Format   string `yaml:"format"`    // "gob" or "ndjson"
	LogLevel string `yaml:"log_level"` // "debug", "info", "warn", "error"
}

// EngineConfig holds descriptor engine settings.
type EngineConfig struct {
	// Cutoff overrides the coordination-shell search radius in Angstrom.
	// Zero keeps the preset.
	Cutoff float64 `yaml:"cutoff"`
}

// PredictConfig holds oxidation-state predictor settings.
type PredictConfig struct {
	ModelPath   string `yaml:"model_path"`
	RuntimePath string `yaml:"runtime_path"` // ONNX runtime shared library
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Dir:      ".",
			Format:   "gob",
			LogLevel: "info",
		},
		Predict: PredictConfig{
			ModelPath: "models/oxstate.onnx",
		},
	}
}

// Load resolves the configuration. A non-empty path names a YAML file that
// must exist; an empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Output.Dir, "OXFEAT_OUTDIR")
	setString(&cfg.Output.Format, "OXFEAT_FORMAT")
	setString(&cfg.Output.LogLevel, "OXFEAT_LOG_LEVEL")
	setFloat(&cfg.Engine.Cutoff, "OXFEAT_CUTOFF")
	setString(&cfg.Predict.ModelPath, "OXFEAT_MODEL_PATH")
	setString(&cfg.Predict.RuntimePath, "OXFEAT_RUNTIME_PATH")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	*dst = f
}
