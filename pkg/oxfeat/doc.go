// Package oxfeat provides the embedding API for the per-metal-site
// structural featurizer.
//
// Quick start:
//
//	res := oxfeat.Featurize(ctx, "structures/hkust1.cif", "out/")
//	if !res.OK() {
//	    log.Printf("skipped %s: %v", res.Path, res.Err)
//	}
//
// A failed structure is a value, not an error: Featurize never panics and
// never returns a Go error, so a caller looping over thousands of files
// aggregates Results instead of unwinding.
package oxfeat
