package alignment

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

func press(v *View, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "pgup":
			msg = tea.KeyMsg{Type: tea.KeyPgUp}
		case "pgdown":
			msg = tea.KeyMsg{Type: tea.KeyPgDown}
		case "home":
			msg = tea.KeyMsg{Type: tea.KeyHome}
		case "end":
			msg = tea.KeyMsg{Type: tea.KeyEnd}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		v.Update(msg)
	}
}

func hairpin() *domain.Family {
	return &domain.Family{
		Identifier: "RF03116",
		Source:     "file:///data/rf03116.sto",
		Document: &domain.AlignmentDocument{
			Sequences: []domain.SequenceRecord{
				{Name: "seqA/1-4", Sequence: "ACGU"},
				{Name: "seqB/2-5", Sequence: "AC-A"},
			},
			Reference: "xxxx",
			Structure: &domain.StructureAnnotation{
				Consensus: "<__>",
				BasePairs: []domain.BasePair{{X: 1, Y: 4, Score: domain.BasePairScore}},
			},
		},
	}
}

func wide(columns, sequences int) *domain.Family {
	doc := &domain.AlignmentDocument{}
	for i := range sequences {
		doc.Sequences = append(doc.Sequences, domain.SequenceRecord{
			Name:     fmt.Sprintf("seq%d", i),
			Sequence: strings.Repeat("A", columns),
		})
	}
	doc.Structure = &domain.StructureAnnotation{Consensus: strings.Repeat(":", columns)}
	return &domain.Family{Identifier: "wide", Document: doc}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
	assert.Nil(t, v.Init())
	assert.Equal(t, status.Position{}, v.Position())
	assert.Contains(t, v.View(), "No alignment loaded")
}

func TestView_SetFamily(t *testing.T) {
	v := NewView(nil, nil)
	v.SetFamily(hairpin())

	assert.Equal(t, "RF03116", v.Family().Identifier)
	assert.Equal(t, status.Position{Column: 1, Columns: 4, Row: 1, Rows: 2, Partner: 4}, v.Position())
	require.Len(t, v.pinned, 2)
	assert.Equal(t, ReferenceLabel, v.pinned[0].name)
	assert.Equal(t, ConsensusLabel, v.pinned[1].name)
	assert.Equal(t, len(ConsensusLabel), v.nameWidth)
}

func TestView_ColumnNavigation(t *testing.T) {
	v := NewView(nil, nil)
	v.SetFamily(hairpin())

	press(v, "right")
	col, _ := v.Cursor()
	assert.Equal(t, 2, col)
	assert.Equal(t, 0, v.Partner())

	press(v, "l", "l", "l")
	col, _ = v.Cursor()
	assert.Equal(t, 4, col, "stops at the last column")

	press(v, "h")
	col, _ = v.Cursor()
	assert.Equal(t, 3, col)

	press(v, "home")
	col, _ = v.Cursor()
	assert.Equal(t, 1, col)

	press(v, "end")
	col, _ = v.Cursor()
	assert.Equal(t, 4, col)
	assert.Equal(t, 1, v.Partner())
}

func TestView_JumpToPartner(t *testing.T) {
	v := NewView(nil, nil)
	v.SetFamily(hairpin())

	press(v, "p")
	col, _ := v.Cursor()
	assert.Equal(t, 4, col)

	press(v, "p")
	col, _ = v.Cursor()
	assert.Equal(t, 1, col)

	press(v, "right", "p")
	col, _ = v.Cursor()
	assert.Equal(t, 2, col)
	assert.Equal(t, "column 2 is unpaired", v.Message())

	press(v, "right")
	assert.Empty(t, v.Message(), "navigation clears the message")
}

func TestView_JumpToPartner_NoStructure(t *testing.T) {
	v := NewView(nil, nil)
	f := hairpin()
	f.Document.Structure = nil
	v.SetFamily(f)

	assert.False(t, v.JumpToPartner())
	assert.Len(t, v.pinned, 1)
}

func TestView_RowNavigation(t *testing.T) {
	v := NewView(nil, nil)
	v.SetFamily(wide(20, 10))
	v.SetDimensions(80, 5) // 2 header lines, 1 pinned row, 2 sequence rows

	press(v, "down", "down", "down")
	_, row := v.Cursor()
	assert.Equal(t, 4, row)
	assert.Equal(t, 2, v.RowOffset())

	press(v, "k", "k", "k", "k", "k")
	_, row = v.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, v.RowOffset())

	press(v, "j")
	view := v.View()
	assert.Contains(t, view, "seq0")
	assert.Contains(t, view, "seq1")
	assert.NotContains(t, view, "seq2")
}

func TestView_HorizontalScroll(t *testing.T) {
	v := NewView(nil, nil)
	v.SetFamily(wide(200, 1))
	v.SetDimensions(24, 10) // 12 name + 1 space leaves 11 columns

	press(v, strings.Split(strings.Repeat("l", 11), "")...)
	col, _ := v.Cursor()
	assert.Equal(t, 12, col)
	assert.Equal(t, 1, v.ColumnOffset())

	press(v, "pgdown")
	col, _ = v.Cursor()
	assert.Equal(t, 23, col)
	assert.Equal(t, 12, v.ColumnOffset())

	press(v, "pgup", "pgup", "pgup")
	col, _ = v.Cursor()
	assert.Equal(t, 1, col)
	assert.Equal(t, 0, v.ColumnOffset())

	press(v, "end")
	assert.Equal(t, 189, v.ColumnOffset())
}

func TestView_ColumnRequested(t *testing.T) {
	v := NewView(nil, nil)
	v.SetFamily(wide(200, 1))

	v.Update(messages.ColumnRequested{Column: 150})
	col, _ := v.Cursor()
	assert.Equal(t, 150, col)

	v.Update(messages.ColumnRequested{Column: 500})
	col, _ = v.Cursor()
	assert.Equal(t, 200, col)

	v.Update(messages.ColumnRequested{Column: -3})
	col, _ = v.Cursor()
	assert.Equal(t, 1, col)
}

func TestView_Render(t *testing.T) {
	v := NewView(nil, nil)
	v.SetFamily(hairpin())

	view := v.View()

	assert.Contains(t, view, "RF03116 RNA Family")
	assert.Contains(t, view, "2 sequences, 4 columns")
	assert.Contains(t, view, ReferenceLabel)
	assert.Contains(t, view, ConsensusLabel)
	assert.Contains(t, view, "seqA/1-4")
	assert.Contains(t, view, "seqB/2-5")

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasSuffix(lines[3], "<__>"))
	assert.True(t, strings.HasSuffix(lines[5], "AC-A"))
}

func TestView_Ruler(t *testing.T) {
	v := NewView(nil, nil)
	v.SetFamily(wide(100, 1))

	ruler := strings.Split(v.View(), "\n")[1]

	assert.Contains(t, ruler, "10")
	assert.Contains(t, ruler, "60")
	assert.NotContains(t, ruler, "70", "column 70 is outside the window")
	assert.Equal(t, v.nameWidth+1+9, strings.Index(ruler, "10")+1, "label ends on its column")
}

func TestView_EmptyAlignment(t *testing.T) {
	v := NewView(nil, nil)
	v.SetFamily(&domain.Family{Identifier: "empty", Document: &domain.AlignmentDocument{}})

	press(v, "right", "p")

	assert.Contains(t, v.View(), "Alignment is empty")
	assert.Equal(t, status.Position{}, v.Position())
	assert.Empty(t, v.Message())
}

func TestView_RaggedRows(t *testing.T) {
	v := NewView(nil, nil)
	v.SetFamily(&domain.Family{Identifier: "ragged", Document: &domain.AlignmentDocument{
		Sequences: []domain.SequenceRecord{
			{Name: "short", Sequence: "AC"},
			{Name: "long", Sequence: "ACGUA"},
		},
	}})

	press(v, "end")

	col, _ := v.Cursor()
	assert.Equal(t, 5, col)
	assert.Equal(t, 5, v.Position().Columns)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd~", truncate("abcdefgh", 5))
	assert.Equal(t, "a", truncate("abc", 1))
}

func TestView_LongNamesAreCapped(t *testing.T) {
	v := NewView(nil, nil)
	name := strings.Repeat("n", 50)
	v.SetFamily(&domain.Family{Identifier: "x", Document: &domain.AlignmentDocument{
		Sequences: []domain.SequenceRecord{{Name: name, Sequence: "ACGU"}},
	}})

	assert.Equal(t, maxNameWidth, v.nameWidth)
	assert.NotContains(t, v.View(), name)
}
