package stockholm

import (
	"strings"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// assembler folds classified lines into per-name sequences and the two
// annotation rows, concatenating fragments across blocks in file order.
type assembler struct {
	order     []string
	fragments map[string]*strings.Builder
	reference strings.Builder
	structure strings.Builder
}

func newAssembler() *assembler {
	return &assembler{
		fragments: make(map[string]*strings.Builder),
	}
}

// add applies one classified line.
func (a *assembler) add(l line) {
	switch l.kind {
	case lineSequence:
		b, ok := a.fragments[l.name]
		if !ok {
			b = &strings.Builder{}
			a.fragments[l.name] = b
			a.order = append(a.order, l.name)
		}
		b.WriteString(l.payload)
	case lineReference:
		a.reference.WriteString(l.payload)
	case lineStructure:
		a.structure.WriteString(l.payload)
	}
}

// records returns the assembled sequences in first-seen order.
func (a *assembler) records() []domain.SequenceRecord {
	out := make([]domain.SequenceRecord, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, domain.SequenceRecord{
			Name:     name,
			Sequence: a.fragments[name].String(),
		})
	}
	return out
}
