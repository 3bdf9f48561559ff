// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/styles"
)

// FamilyList displays family identifiers in a navigable list.
type FamilyList struct {
	families []string
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewFamilyList creates a new family list component.
func NewFamilyList(s *styles.Styles) *FamilyList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FamilyList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the family list.
func (l *FamilyList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *FamilyList) Update(msg tea.Msg) (*FamilyList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home":
			l.selected = 0
		case "end":
			l.selected = max(len(l.families)-1, 0)
		}
	}
	return l, nil
}

// View renders the family list.
func (l *FamilyList) View() string {
	if len(l.families) == 0 {
		return l.styles.Muted.Render("No families")
	}

	header := l.styles.Subtitle.Render(fmt.Sprintf("Families (%d)", len(l.families)))
	lines := []string{header, ""}

	start, end := l.visibleRange()
	for i := start; i < end; i++ {
		if i == l.selected {
			lines = append(lines, l.styles.Selected.Render("> "+l.families[i]))
		} else {
			lines = append(lines, l.styles.Normal.Render("  "+l.families[i]))
		}
	}

	return strings.Join(lines, "\n")
}

// visibleRange returns the window of rows that keeps the selection on screen.
func (l *FamilyList) visibleRange() (int, int) {
	visible := max(l.height-2, 1)
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	return start, min(start+visible, len(l.families))
}

// SetFamilies updates the list and resets the selection.
func (l *FamilyList) SetFamilies(families []string) {
	l.families = families
	l.selected = 0
}

// Families returns the listed identifiers.
func (l *FamilyList) Families() []string {
	return l.families
}

// Selected returns the index of the selected family.
func (l *FamilyList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *FamilyList) SetSelected(index int) {
	if index >= 0 && index < len(l.families) {
		l.selected = index
	}
}

// SelectedFamily returns the selected identifier, or "" when the list is empty.
func (l *FamilyList) SelectedFamily() string {
	if len(l.families) == 0 {
		return ""
	}
	return l.families[l.selected]
}

// MoveUp moves selection up.
func (l *FamilyList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *FamilyList) MoveDown() {
	if l.selected < len(l.families)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *FamilyList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of families.
func (l *FamilyList) Count() int {
	return len(l.families)
}

// IsEmpty returns whether the list is empty.
func (l *FamilyList) IsEmpty() bool {
	return len(l.families) == 0
}
