// Package alignment provides the alignment viewer for the TUI.
//
// The viewer keeps the name column fixed and scrolls a window of alignment
// columns horizontally. The reference and consensus rows stay pinned above
// the sequences. The cursor column and its base-pair partner are highlighted.
package alignment

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

const (
	// ReferenceLabel names the pinned reference row.
	ReferenceLabel = "#=GC RF"

	// ConsensusLabel names the pinned consensus row.
	ConsensusLabel = "#=GC SS_cons"

	minNameWidth = 8
	maxNameWidth = 30

	// headerLines are the title and the column ruler.
	headerLines = 2
)

type rowKind int

const (
	rowSequence rowKind = iota
	rowReference
	rowConsensus
)

type row struct {
	name string
	text string
	kind rowKind
}

// View renders one alignment and tracks the cursor.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	family    *domain.Family
	pinned    []row
	sequences []row
	columns   int
	nameWidth int

	cursorCol int
	cursorRow int
	colOffset int
	rowOffset int

	width   int
	height  int
	message string
}

// NewView creates a new alignment view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:    s,
		keymap:    km,
		nameWidth: minNameWidth,
		width:     80,
		height:    24,
	}
}

// SetFamily replaces the displayed alignment and resets the cursor.
func (v *View) SetFamily(f *domain.Family) {
	v.family = f
	v.pinned = nil
	v.sequences = nil
	v.columns = 0
	v.cursorCol, v.cursorRow = 0, 0
	v.colOffset, v.rowOffset = 0, 0
	v.message = ""

	if f == nil || f.Document == nil {
		v.nameWidth = minNameWidth
		return
	}

	doc := f.Document
	if doc.Reference != "" {
		v.pinned = append(v.pinned, row{name: ReferenceLabel, text: doc.Reference, kind: rowReference})
	}
	if doc.Structure != nil && doc.Structure.Consensus != "" {
		v.pinned = append(v.pinned, row{name: ConsensusLabel, text: doc.Structure.Consensus, kind: rowConsensus})
	}
	for _, rec := range doc.Sequences {
		v.sequences = append(v.sequences, row{name: rec.Name, text: rec.Sequence})
	}

	width := minNameWidth
	for _, r := range v.rows() {
		v.columns = max(v.columns, len(r.text))
		width = max(width, len(r.name))
	}
	v.nameWidth = min(width, maxNameWidth)
}

// Family returns the displayed family.
func (v *View) Family() *domain.Family {
	return v.family
}

func (v *View) rows() []row {
	all := make([]row, 0, len(v.pinned)+len(v.sequences))
	all = append(all, v.pinned...)
	return append(all, v.sequences...)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and column requests.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ColumnRequested:
		v.GoToColumn(msg.Column)
	case tea.KeyMsg:
		v.handleKey(msg.String())
	}
	return v, nil
}

func (v *View) handleKey(k string) {
	if v.columns == 0 {
		return
	}
	v.message = ""

	switch {
	case keymap.Matches(k, v.keymap.Left):
		v.moveColumn(-1)
	case keymap.Matches(k, v.keymap.Right):
		v.moveColumn(1)
	case keymap.Matches(k, v.keymap.PageLeft):
		v.moveColumn(-v.windowColumns())
	case keymap.Matches(k, v.keymap.PageRight):
		v.moveColumn(v.windowColumns())
	case keymap.Matches(k, v.keymap.Home):
		v.moveColumn(-v.columns)
	case keymap.Matches(k, v.keymap.End):
		v.moveColumn(v.columns)
	case keymap.Matches(k, v.keymap.Up):
		v.moveRow(-1)
	case keymap.Matches(k, v.keymap.Down):
		v.moveRow(1)
	case keymap.Matches(k, v.keymap.Partner):
		v.JumpToPartner()
	}
}

// GoToColumn moves the cursor to a 1-based column, clamped to the alignment.
func (v *View) GoToColumn(column int) {
	if v.columns == 0 {
		return
	}
	v.cursorCol = min(max(column-1, 0), v.columns-1)
	v.scrollColumns()
}

// JumpToPartner moves the cursor to the base-pair partner of the cursor column.
// It reports false, and sets a status message, when the column is unpaired.
func (v *View) JumpToPartner() bool {
	partner := v.Partner()
	if partner == 0 {
		v.message = fmt.Sprintf("column %d is unpaired", v.cursorCol+1)
		return false
	}
	v.GoToColumn(partner)
	return true
}

// Partner returns the 1-based partner of the cursor column, or 0.
func (v *View) Partner() int {
	if v.family == nil || v.family.Document == nil {
		return 0
	}
	p, ok := v.family.Document.Structure.PartnerOf(v.cursorCol + 1)
	if !ok {
		return 0
	}
	return p
}

func (v *View) moveColumn(delta int) {
	v.cursorCol = min(max(v.cursorCol+delta, 0), v.columns-1)
	v.scrollColumns()
}

func (v *View) moveRow(delta int) {
	if len(v.sequences) == 0 {
		return
	}
	v.cursorRow = min(max(v.cursorRow+delta, 0), len(v.sequences)-1)
	visible := v.visibleRows()
	if v.cursorRow < v.rowOffset {
		v.rowOffset = v.cursorRow
	}
	if v.cursorRow >= v.rowOffset+visible {
		v.rowOffset = v.cursorRow - visible + 1
	}
}

// scrollColumns keeps the cursor inside the column window.
func (v *View) scrollColumns() {
	window := v.windowColumns()
	if v.cursorCol < v.colOffset {
		v.colOffset = v.cursorCol
	}
	if v.cursorCol >= v.colOffset+window {
		v.colOffset = v.cursorCol - window + 1
	}
}

// windowColumns is the number of alignment columns that fit beside the names.
func (v *View) windowColumns() int {
	return max(v.width-v.nameWidth-1, 1)
}

// visibleRows is the number of sequence rows that fit below the pinned rows.
func (v *View) visibleRows() int {
	return max(v.height-headerLines-len(v.pinned), 1)
}

// Position reports the cursor for the status bar.
func (v *View) Position() status.Position {
	if v.columns == 0 {
		return status.Position{}
	}
	p := status.Position{
		Column:  v.cursorCol + 1,
		Columns: v.columns,
		Rows:    len(v.sequences),
		Partner: v.Partner(),
	}
	if len(v.sequences) > 0 {
		p.Row = v.cursorRow + 1
	}
	return p
}

// Cursor returns the 1-based cursor column and row.
func (v *View) Cursor() (column, row int) {
	return v.cursorCol + 1, v.cursorRow + 1
}

// ColumnOffset returns the first 0-based column in the window.
func (v *View) ColumnOffset() int {
	return v.colOffset
}

// RowOffset returns the first 0-based sequence row in the window.
func (v *View) RowOffset() int {
	return v.rowOffset
}

// Message returns the last navigation message.
func (v *View) Message() string {
	return v.message
}

// View renders the alignment window.
func (v *View) View() string {
	if v.family == nil {
		return v.styles.Muted.Render("No alignment loaded")
	}

	lines := make([]string, 0, v.height)
	lines = append(lines, v.renderTitle(), v.renderRuler())

	if v.columns == 0 {
		lines = append(lines, v.styles.Muted.Render("Alignment is empty"))
		return strings.Join(lines, "\n")
	}

	partner := v.Partner()
	for _, r := range v.pinned {
		lines = append(lines, v.renderRow(r, false, partner))
	}

	end := min(v.rowOffset+v.visibleRows(), len(v.sequences))
	for i := v.rowOffset; i < end; i++ {
		lines = append(lines, v.renderRow(v.sequences[i], i == v.cursorRow, partner))
	}

	return strings.Join(lines, "\n")
}

func (v *View) renderTitle() string {
	doc := v.family.Document
	title := v.styles.Title.Render(v.family.Metadata().Title)
	info := v.styles.Muted.Render(fmt.Sprintf("  %d sequences, %d columns", doc.Len(), v.columns))
	return title + info
}

// renderRuler labels every tenth column, right-aligned on the column.
func (v *View) renderRuler() string {
	window := v.windowColumns()
	ruler := []byte(strings.Repeat(" ", window))
	next := 0
	for i := range window {
		col := v.colOffset + i + 1
		if col > v.columns {
			break
		}
		if col%10 != 0 {
			continue
		}
		label := strconv.Itoa(col)
		start := i - len(label) + 1
		if start < next {
			continue
		}
		copy(ruler[start:], label)
		next = i + 2
	}
	pad := strings.Repeat(" ", v.nameWidth+1)
	return pad + v.styles.Muted.Render(strings.TrimRight(string(ruler), " "))
}

func (v *View) renderRow(r row, selected bool, partner int) string {
	name := truncate(r.name, v.nameWidth)
	name = fmt.Sprintf("%-*s", v.nameWidth, name)

	switch {
	case selected:
		name = v.styles.Selected.Render(name)
	case r.kind != rowSequence:
		name = v.styles.Annotation.Render(name)
	default:
		name = v.styles.Name.Render(name)
	}

	var b strings.Builder
	window := v.windowColumns()
	for i := range window {
		col := v.colOffset + i
		if col >= v.columns {
			break
		}
		c := byte(' ')
		if col < len(r.text) {
			c = r.text[col]
		}
		b.WriteString(v.cellStyle(r, c, col, partner).Render(string(c)))
	}

	return name + " " + b.String()
}

func (v *View) cellStyle(r row, c byte, col, partner int) lipgloss.Style {
	switch {
	case col == v.cursorCol:
		return v.styles.Cursor
	case partner > 0 && col == partner-1:
		return v.styles.Partner
	case r.kind != rowSequence:
		return v.styles.Annotation
	default:
		return v.styles.Residue(c)
	}
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "~"
}

// SetDimensions sets the view dimensions and keeps the cursor visible.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.scrollColumns()
	v.moveRow(0)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}
