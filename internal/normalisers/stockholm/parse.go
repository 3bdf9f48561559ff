package stockholm

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

type config struct {
	features bool
	strict   bool
}

// Option configures Parse.
type Option func(*config)

// WithFeatures attaches feature segments to the decoded structure.
func WithFeatures() Option {
	return func(c *config) { c.features = true }
}

// WithStrict rejects alignments whose rows disagree on column count.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}

// OptionsFrom converts service-level parse options.
func OptionsFrom(o domain.ParseOptions) []Option {
	var opts []Option
	if o.Features {
		opts = append(opts, WithFeatures())
	}
	if o.Strict {
		opts = append(opts, WithStrict())
	}
	return opts
}

// Parse interprets a complete Stockholm document held in memory.
// It fails with domain.ErrEmptyInput for blank text, domain.ErrFormat when
// the header token is missing and, in strict mode only, domain.ErrMalformedBlock.
// No document is returned alongside an error.
func Parse(content string, opts ...Option) (*domain.AlignmentDocument, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: no content provided", domain.ErrEmptyInput)
	}
	if !strings.Contains(content, HeaderToken) {
		return nil, fmt.Errorf("%w: missing %q header", domain.ErrFormat, HeaderToken)
	}

	asm := newAssembler()
	for raw := range strings.Lines(content) {
		asm.add(classifyLine(raw))
	}

	doc := &domain.AlignmentDocument{
		Sequences: asm.records(),
		Reference: asm.reference.String(),
	}
	if consensus := asm.structure.String(); consensus != "" {
		s := DecodeStructure(consensus, cfg.features)
		doc.Structure = &s
	}

	if cfg.strict {
		if err := checkColumns(doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// checkColumns verifies every row spans the same number of columns.
func checkColumns(doc *domain.AlignmentDocument) error {
	want := doc.Columns()
	for _, rec := range doc.Sequences {
		if len(rec.Sequence) != want {
			return fmt.Errorf("%w: sequence %q has %d columns, expected %d",
				domain.ErrMalformedBlock, rec.Name, len(rec.Sequence), want)
		}
	}
	if doc.Reference != "" && len(doc.Reference) != want {
		return fmt.Errorf("%w: reference has %d columns, expected %d",
			domain.ErrMalformedBlock, len(doc.Reference), want)
	}
	if doc.Structure != nil && len(doc.Structure.Consensus) != want {
		return fmt.Errorf("%w: structure consensus has %d columns, expected %d",
			domain.ErrMalformedBlock, len(doc.Structure.Consensus), want)
	}
	return nil
}
