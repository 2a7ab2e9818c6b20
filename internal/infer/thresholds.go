package infer

// Thresholds are the acceptance rates and categorical-vote parameters of
// the classifier. They are policy, not structure: callers may tune them,
// the defaults reproduce the behavior the heuristics were calibrated on.
type Thresholds struct {
	// DateTimeMinRate is the minimum fraction of non-null cells that must
	// parse as a date/time. Tolerant: real logs carry malformed dates.
	DateTimeMinRate float64
	// BoolMinRate is the minimum fraction of non-null cells found in the
	// boolean lexicon.
	BoolMinRate float64
	// NumericMinRate is the minimum parse success rate among non-blank cells.
	NumericMinRate float64
	// NumericMinFilled is the minimum fraction of all rows that must be
	// non-blank, guarding against typing a column that is almost empty.
	NumericMinFilled float64

	// Categorical detector: negative overrides.
	CatMaxDistinctRatio float64 // above this, looks like an identifier
	CatMaxCodeRate      float64 // above this share of opaque codes, reject

	// Categorical detector: positive signals and the vote.
	CatMaxMedianLen     float64
	CatMaxDistinct      int
	CatLowDistinctRatio float64
	CatTopCoverage      float64
	CatTopN             int
	CatMinSignals       int
}

// DefaultThresholds returns the calibrated defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DateTimeMinRate:     0.60,
		BoolMinRate:         0.90,
		NumericMinRate:      0.90,
		NumericMinFilled:    0.05,
		CatMaxDistinctRatio: 0.5,
		CatMaxCodeRate:      0.3,
		CatMaxMedianLen:     25,
		CatMaxDistinct:      50,
		CatLowDistinctRatio: 0.2,
		CatTopCoverage:      0.8,
		CatTopN:             10,
		CatMinSignals:       3,
	}
}
