package domain

import "fmt"

// AlignmentDocument is the result of parsing one Stockholm alignment.
// It is constructed fresh per parse and never shared between calls.
type AlignmentDocument struct {
	// Sequences holds one record per distinct name, in first-seen order.
	Sequences []SequenceRecord `json:"sequences"`

	// Reference is the "#=GC RF" row. Empty when the alignment has none.
	Reference string `json:"reference,omitempty"`

	// Structure is the decoded "#=GC SS_cons" row, nil when absent.
	Structure *StructureAnnotation `json:"structure,omitempty"`
}

// Len returns the number of sequences.
func (d *AlignmentDocument) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Sequences)
}

// Columns returns the alignment width as seen by the first sequence.
// Falls back to the reference and then the consensus when there are no sequences.
func (d *AlignmentDocument) Columns() int {
	switch {
	case d == nil:
		return 0
	case len(d.Sequences) > 0:
		return len(d.Sequences[0].Sequence)
	case d.Reference != "":
		return len(d.Reference)
	case d.Structure != nil:
		return len(d.Structure.Consensus)
	}
	return 0
}

// Sequence looks up a record by name.
func (d *AlignmentDocument) Sequence(name string) (SequenceRecord, bool) {
	if d == nil {
		return SequenceRecord{}, false
	}
	for _, rec := range d.Sequences {
		if rec.Name == name {
			return rec, true
		}
	}
	return SequenceRecord{}, false
}

// SequenceRecord is one named, aligned row. The sequence may contain gap characters.
type SequenceRecord struct {
	Name     string `json:"name"`
	Sequence string `json:"sequence"`
}

// StructureAnnotation is a dot-bracket consensus decoded into a base-pair graph.
type StructureAnnotation struct {
	// Consensus is the dot-bracket string over the alignment columns.
	Consensus string `json:"consensus"`

	// BasePairs are ordered by the column of their closing symbol.
	BasePairs []BasePair `json:"basePairs"`

	// Features are run-length segments, only present when requested.
	Features []Feature `json:"features,omitempty"`
}

// PartnerOf returns the column paired with the given 1-based column.
func (s *StructureAnnotation) PartnerOf(column int) (int, bool) {
	if s == nil {
		return 0, false
	}
	for _, bp := range s.BasePairs {
		switch column {
		case bp.X:
			return bp.Y, true
		case bp.Y:
			return bp.X, true
		}
	}
	return 0, false
}

// BasePairScore is attached to every decoded pair. It is an annotation
// constant, not a confidence value.
const BasePairScore = 1.0

// BasePair links two 1-based columns. X is always less than Y.
type BasePair struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Score float64 `json:"score"`
}

// FeatureKind classifies a run of consensus columns.
type FeatureKind string

// Feature kinds.
const (
	// FeatureStem covers bracket columns.
	FeatureStem FeatureKind = "stem"

	// FeatureLoop covers '_' columns.
	FeatureLoop FeatureKind = "loop"

	// FeatureSingleStrand covers every other column.
	FeatureSingleStrand FeatureKind = "single_strand"
)

// IsValid returns true if the kind is recognised.
func (k FeatureKind) IsValid() bool {
	switch k {
	case FeatureStem, FeatureLoop, FeatureSingleStrand:
		return true
	default:
		return false
	}
}

// Description returns a human-readable name for the kind.
func (k FeatureKind) Description() string {
	switch k {
	case FeatureStem:
		return "Stem"
	case FeatureLoop:
		return "Loop"
	case FeatureSingleStrand:
		return "Single strand"
	default:
		return "Unknown"
	}
}

// Feature is a maximal run of one kind over 1-based inclusive columns.
type Feature struct {
	Start int         `json:"start"`
	End   int         `json:"end"`
	Kind  FeatureKind `json:"kind"`
	Label string      `json:"label"`
}

// Len returns the number of columns the feature spans.
func (f Feature) Len() int {
	return f.End - f.Start + 1
}

// NewFeature builds a feature with its display label.
func NewFeature(start, end int, kind FeatureKind) Feature {
	return Feature{
		Start: start,
		End:   end,
		Kind:  kind,
		Label: fmt.Sprintf("%s %d-%d", kind.Description(), start, end),
	}
}

// ParseOptions controls optional parser behaviour.
type ParseOptions struct {
	// Features attaches run-length structure features.
	Features bool

	// Strict rejects alignments whose rows disagree on column count.
	Strict bool
}
