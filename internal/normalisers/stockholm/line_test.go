package stockholm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    lineKind
		seqName string
		payload string
	}{
		{"blank", "", lineIgnored, "", ""},
		{"whitespace only", "   \t ", lineIgnored, "", ""},
		{"header", "# STOCKHOLM 1.0", lineHeader, "", ""},
		{"header with leading space", "  # STOCKHOLM 1.0", lineHeader, "", ""},
		{"sequence", "AB001721.1/2-78 ACGU-UG", lineSequence, "AB001721.1/2-78", "ACGU-UG"},
		{"sequence with padding", "seq1     AC..GU   ", lineSequence, "seq1", "AC..GU"},
		{"sequence with tab", "seq1\tACGU\r", lineSequence, "seq1", "ACGU"},
		{"reference", "#=GC RF         xxxx..xx", lineReference, "", "xxxx..xx"},
		{"reference split tokens", "#=GC RF xx xx", lineReference, "", "xxxx"},
		{"structure", "#=GC SS_cons    <<__>>", lineStructure, "", "<<__>>"},
		{"structure with tab", "#=GC SS_cons\t::<>", lineStructure, "", "::<>"},
		{"reference without payload", "#=GC RF", lineIgnored, "", ""},
		{"reference without payload trailing space", "#=GC RF   ", lineIgnored, "", ""},
		{"other GC tag", "#=GC SS_cons_2 <<>>", lineIgnored, "", ""},
		{"RF prefix of longer tag", "#=GC RFX abc", lineIgnored, "", ""},
		{"per-residue annotation", "#=GR seq1 SS <<>>", lineIgnored, "", ""},
		{"file annotation", "#=GF ID tRNA", lineIgnored, "", ""},
		{"sequence annotation", "#=GS seq1 AC P12345", lineIgnored, "", ""},
		{"comment", "# a comment", lineIgnored, "", ""},
		{"terminator", "//", lineIgnored, "", ""},
		{"three tokens", "seq1 ACGU extra", lineIgnored, "", ""},
		{"single token", "ACGU", lineIgnored, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyLine(tt.input)
			assert.Equal(t, tt.kind, got.kind, "kind was %s", got.kind)
			assert.Equal(t, tt.seqName, got.name)
			assert.Equal(t, tt.payload, got.payload)
		})
	}
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "header", lineHeader.String())
	assert.Equal(t, "sequence", lineSequence.String())
	assert.Equal(t, "reference", lineReference.String())
	assert.Equal(t, "structure", lineStructure.String())
	assert.Equal(t, "ignored", lineIgnored.String())
}
