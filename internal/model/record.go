// Package model holds the types that flow between the pipeline stages.
package model

// SiteRecord is the featurization result for one metal site. Keeping the
// site index makes the sequence collision-free even when several sites
// share a species label.
type SiteRecord struct {
	Index   int        // site index in the source structure
	Label   string     // species label (element symbol)
	Feature []float64  // concatenated descriptor vector
	Coords  [3]float64 // Cartesian coordinates in Angstrom
}

// SiteFeature is one entry of the serialized label-keyed table.
type SiteFeature struct {
	Feature []float64
	Coords  [3]float64
}

// FeatureTable is the label-keyed form written to the binary output.
// When two sites share a label the later one in structure order wins;
// the collision is a known property of the table format, which is why the
// record sequence, not the table, is the canonical in-memory shape.
type FeatureTable map[string]SiteFeature

// TableFromRecords folds a record sequence into the label-keyed table,
// last record per label winning.
func TableFromRecords(records []SiteRecord) FeatureTable {
	table := make(FeatureTable, len(records))
	for _, r := range records {
		table[r.Label] = SiteFeature{Feature: r.Feature, Coords: r.Coords}
	}
	return table
}
