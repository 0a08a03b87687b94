package model

// Status is the terminal state of one featurization run.
type Status int

const (
	// Completed means every metal site featurized and the output file
	// was written.
	Completed Status = iota
	// LoadFailed means the structure file could not be parsed; no output.
	LoadFailed
	// FeaturizeFailed means a site computation or the serialization step
	// failed; no output, no partial results.
	FeaturizeFailed
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case LoadFailed:
		return "load_failed"
	case FeaturizeFailed:
		return "featurize_failed"
	default:
		return "unknown"
	}
}

// Result reports the outcome of featurizing one structure. Failures are
// values, not errors: a bad structure must never abort a batch run, so the
// driver aggregates Results instead of unwinding.
type Result struct {
	Path       string // input structure path
	Status     Status
	Err        error  // reason for a non-Completed status
	MetalSites int    // number of metal sites found (valid once loaded)
	OutputPath string // written file (only when Completed)
}

// OK reports whether the run completed and produced an output file.
func (r Result) OK() bool { return r.Status == Completed }
