package oxfeat

import (
	"context"

	"github.com/mofminer/oxfeat/internal/featurize"
	"github.com/mofminer/oxfeat/internal/model"
	"github.com/mofminer/oxfeat/internal/output"
	"github.com/mofminer/oxfeat/internal/output/ndjson"
	"github.com/mofminer/oxfeat/internal/pipeline"
)

// Status mirrors the internal run status.
type Status = model.Status

// Re-exported terminal states.
const (
	Completed       = model.Completed
	LoadFailed      = model.LoadFailed
	FeaturizeFailed = model.FeaturizeFailed
)

// Result is the outcome of featurizing one structure.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Result struct {
	Path       string // input structure path
	Status     Status
	Err        error  // reason for a non-Completed status
	MetalSites int    // metal sites found (valid once loaded)
	OutputPath string // written file (only when Completed)
}

// OK reports whether the run completed and produced an output file.
func (r Result) OK() bool { return r.Status == Completed }

type options struct {
	cutoff float64
	writer output.Writer
}

// Option configures a Featurize call.
type Option func(*options)

// WithCutoff overrides the coordination-shell search radius in Angstrom.
// Non-positive keeps the preset.
func WithCutoff(cutoff float64) Option {
	return func(o *options) { o.cutoff = cutoff }
}

// WithNDJSON writes a collision-free NDJSON record sequence instead of the
// default label-keyed gob table.
func WithNDJSON() Option {
	return func(o *options) { o.writer = ndjson.New() }
}

// Featurize runs the full pipeline for one structure file, writing the
// output and batch log into outdir. Call logging.Init (or let the CLI do
// it) once per process beforehand if the log file matters to you;
// otherwise records go to the default slog destination.
func Featurize(ctx context.Context, path, outdir string, opts ...Option) Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	popts := []pipeline.Option{
		pipeline.WithFeaturizer(featurize.DefaultWithCutoff(o.cutoff)),
	}
	if o.writer != nil {
		popts = append(popts, pipeline.WithWriter(o.writer))
	}

	res := pipeline.New(path, outdir, popts...).Run(ctx)
	return Result{
		Path:       res.Path,
		Status:     res.Status,
		Err:        res.Err,
		MetalSites: res.MetalSites,
		OutputPath: res.OutputPath,
	}
}

// FeatureLabels names the components of the descriptor vector, in order.
func FeatureLabels() []string {
	return featurize.Default().Labels()
}
