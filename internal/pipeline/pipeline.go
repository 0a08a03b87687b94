// Package pipeline orchestrates one featurization run: parse the structure,
// select the metal sites, compute the descriptor vector for each, and
// serialize the result. A run is strictly sequential and all-or-nothing:
// the first per-site failure aborts the run and no output file is written.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mofminer/oxfeat/internal/featurize"
	"github.com/mofminer/oxfeat/internal/logging"
	"github.com/mofminer/oxfeat/internal/model"
	"github.com/mofminer/oxfeat/internal/output"
	"github.com/mofminer/oxfeat/internal/output/gobfile"
	"github.com/mofminer/oxfeat/internal/structure"
)

// Featurizer drives the per-structure pipeline. One instance serves one
// input file; nothing is shared across runs except the process-wide log.
type Featurizer struct {
	path   string
	outdir string
	multi  featurize.SiteFeaturizer
	writer output.Writer
	log    *slog.Logger

	structure *structure.Structure
}

// Option configures a Featurizer.
type Option func(*Featurizer)

// WithFeaturizer overrides the default descriptor recipe.
func WithFeaturizer(f featurize.SiteFeaturizer) Option {
	return func(fz *Featurizer) { fz.multi = f }
}

// WithWriter overrides the default gob writer.
func WithWriter(w output.Writer) Option {
	return func(fz *Featurizer) { fz.writer = w }
}

// New creates a Featurizer for one structure file. Output and the batch
// log live in outdir.
func New(path, outdir string, opts ...Option) *Featurizer {
	fz := &Featurizer{
		path:   path,
		outdir: outdir,
		log:    logging.New("pipeline"),
	}
	for _, opt := range opts {
		opt(fz)
	}
	if fz.multi == nil {
		fz.multi = featurize.Default()
	}
	return fz
}

// Precheck parses the input before committing to expensive computation.
// On success the structure is retained for the run; any parse failure is
// reported as false, not as an error.
func (f *Featurizer) Precheck() bool {
	s, err := structure.Read(f.path)
	if err != nil {
		return false
	}
	f.structure = s
	return true
}

// Run executes the full pipeline and reports the outcome as a Result.
// Failures never propagate: a bad structure must not abort the batch, so
// every failure degrades to a log line plus a typed status.
func (f *Featurizer) Run(ctx context.Context) model.Result {
	res := model.Result{Path: f.path}

	if !f.Precheck() {
		res.Status = model.LoadFailed
		res.Err = fmt.Errorf("could not load %s", f.path)
		f.log.Error("could not load " + f.path)
		return res
	}

	sites, indices := f.structure.MetalSites()
	res.MetalSites = len(sites)

	records := make([]model.SiteRecord, 0, len(sites))
	for k, site := range sites {
		if err := ctx.Err(); err != nil {
			return f.failed(res, err)
		}
		vec, err := f.multi.Featurize(f.structure, indices[k])
		if err != nil {
			return f.failed(res, err)
		}
		records = append(records, model.SiteRecord{
			Index:   indices[k],
			Label:   site.Symbol,
			Feature: vec,
			Coords:  [3]float64{site.Cart.X, site.Cart.Y, site.Cart.Z},
		})
	}

	writer := f.writer
	if writer == nil {
		writer = gobfile.New()
	}
	path, err := writer.Write(ctx, f.outdir, Stem(f.path), records)
	if err != nil {
		return f.failed(res, err)
	}

	res.Status = model.Completed
	res.OutputPath = path
	f.log.Debug("featurized "+f.path, slog.Int("metal_sites", len(records)))
	return res
}

// failed marks the run FeaturizeFailed with exactly one error log line
// naming the input path.
func (f *Featurizer) failed(res model.Result, err error) model.Result {
	res.Status = model.FeaturizeFailed
	res.Err = err
	f.log.Error("could not featurize " + f.path)
	return res
}

// Stem returns the input file's base name without its extension; the
// output file is named after it.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Batch featurizes the given structure files sequentially, one Result per
// input. Deliberately not parallel: runs are memory-hungry and the mining
// jobs shard across processes instead.
func Batch(ctx context.Context, paths []string, outdir string, opts ...Option) []model.Result {
	results := make([]model.Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, New(p, outdir, opts...).Run(ctx))
	}
	return results
}
