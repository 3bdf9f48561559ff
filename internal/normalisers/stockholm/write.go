package stockholm

import (
	"fmt"
	"io"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// Write emits the document as a minimal single-block Stockholm file:
// header, sequences, the reference and structure rows when present, and
// the "//" terminator. Row names are padded so columns line up.
func Write(w io.Writer, doc *domain.AlignmentDocument) error {
	if doc == nil {
		return domain.ErrInvalidInput
	}

	width := len(structurePrefix)
	for _, rec := range doc.Sequences {
		width = max(width, len(rec.Name))
	}

	var err error
	pf := func(format string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}

	pf("%s 1.0\n\n", HeaderToken)
	for _, rec := range doc.Sequences {
		pf("%-*s %s\n", width, rec.Name, rec.Sequence)
	}
	if doc.Reference != "" {
		pf("%-*s %s\n", width, referencePrefix, doc.Reference)
	}
	if doc.Structure != nil && doc.Structure.Consensus != "" {
		pf("%-*s %s\n", width, structurePrefix, doc.Structure.Consensus)
	}
	pf("//\n")
	return err
}
