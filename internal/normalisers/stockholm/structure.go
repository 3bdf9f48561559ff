package stockholm

import "github.com/custodia-labs/rna-msa/internal/core/domain"

// openerFor maps each closing bracket to the opening bracket of its family.
var openerFor = map[byte]byte{
	'>': '<',
	')': '(',
	']': '[',
	'}': '{',
}

func isOpener(c byte) bool {
	return c == '<' || c == '(' || c == '[' || c == '{'
}

func isBracket(c byte) bool {
	if isOpener(c) {
		return true
	}
	_, ok := openerFor[c]
	return ok
}

// DecodeStructure turns a dot-bracket consensus into a base-pair graph,
// optionally with feature segments.
func DecodeStructure(consensus string, withFeatures bool) domain.StructureAnnotation {
	s := domain.StructureAnnotation{
		Consensus: consensus,
		BasePairs: BasePairs(consensus),
	}
	if withFeatures {
		s.Features = Segment(consensus)
	}
	return s
}

// BasePairs matches brackets with one stack per family. Pairs are emitted
// in the order their closing symbol is reached. Closers without an open
// partner and openers left on a stack at the end produce nothing.
func BasePairs(consensus string) []domain.BasePair {
	pairs := []domain.BasePair{}
	stacks := make(map[byte][]int, len(openerFor))

	for i := 0; i < len(consensus); i++ {
		c := consensus[i]
		pos := i + 1

		if isOpener(c) {
			stacks[c] = append(stacks[c], pos)
			continue
		}

		open, ok := openerFor[c]
		if !ok {
			continue
		}
		stack := stacks[open]
		if len(stack) == 0 {
			continue
		}
		x := stack[len(stack)-1]
		stacks[open] = stack[:len(stack)-1]
		pairs = append(pairs, domain.BasePair{X: x, Y: pos, Score: domain.BasePairScore})
	}

	return pairs
}

// minFeatureLen is the shortest run reported as a feature.
const minFeatureLen = 2

// Segment run-length encodes the consensus into stem, loop and
// single-strand runs, keeping only stem and loop runs of two or more columns.
func Segment(consensus string) []domain.Feature {
	features := []domain.Feature{}
	if consensus == "" {
		return features
	}

	start := 1
	kind := columnKind(consensus[0])
	flush := func(end int) {
		if kind == domain.FeatureSingleStrand || end-start+1 < minFeatureLen {
			return
		}
		features = append(features, domain.NewFeature(start, end, kind))
	}

	for i := 1; i < len(consensus); i++ {
		k := columnKind(consensus[i])
		if k == kind {
			continue
		}
		flush(i)
		start, kind = i+1, k
	}
	flush(len(consensus))

	return features
}

// columnKind classifies one consensus column.
func columnKind(c byte) domain.FeatureKind {
	switch {
	case isBracket(c):
		return domain.FeatureStem
	case c == '_':
		return domain.FeatureLoop
	default:
		return domain.FeatureSingleStrand
	}
}
