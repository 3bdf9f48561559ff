package list

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/styles"
)

func sampleFamilies() []string {
	return []string{"rf00001", "rf00005", "rf03116"}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewFamilyList(t *testing.T) {
	l := NewFamilyList(styles.DefaultStyles())

	require.NotNil(t, l)
	assert.Equal(t, 0, l.Selected())
	assert.True(t, l.IsEmpty())
	assert.Equal(t, "", l.SelectedFamily())
	assert.Nil(t, l.Init())
}

func TestNewFamilyList_NilStyles(t *testing.T) {
	l := NewFamilyList(nil)

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
}

func TestFamilyList_Navigation(t *testing.T) {
	l := NewFamilyList(nil)
	l.SetFamilies(sampleFamilies())

	l.Update(key("down"))
	assert.Equal(t, "rf00005", l.SelectedFamily())

	l.Update(key("j"))
	l.Update(key("j"))
	assert.Equal(t, 2, l.Selected(), "stops at the last entry")

	l.Update(key("k"))
	assert.Equal(t, 1, l.Selected())

	l.Update(key("up"))
	l.Update(key("up"))
	assert.Equal(t, 0, l.Selected(), "stops at the first entry")

	l.Update(key("end"))
	assert.Equal(t, 2, l.Selected())

	l.Update(key("home"))
	assert.Equal(t, 0, l.Selected())
}

func TestFamilyList_SetSelected(t *testing.T) {
	l := NewFamilyList(nil)
	l.SetFamilies(sampleFamilies())

	l.SetSelected(2)
	assert.Equal(t, "rf03116", l.SelectedFamily())

	l.SetSelected(10)
	assert.Equal(t, 2, l.Selected())

	l.SetFamilies([]string{"a"})
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 1, l.Count())
	assert.Equal(t, []string{"a"}, l.Families())
}

func TestFamilyList_View(t *testing.T) {
	l := NewFamilyList(nil)
	assert.Contains(t, l.View(), "No families")

	l.SetFamilies(sampleFamilies())
	view := l.View()
	assert.Contains(t, view, "Families (3)")
	assert.Contains(t, view, "> rf00001")
	assert.Contains(t, view, "  rf00005")
}

func TestFamilyList_ViewScrollsToSelection(t *testing.T) {
	families := make([]string, 20)
	for i := range families {
		families[i] = fmt.Sprintf("rf%05d", i)
	}
	l := NewFamilyList(nil)
	l.SetFamilies(families)
	l.SetDimensions(80, 7)

	l.SetSelected(15)
	view := l.View()

	assert.Contains(t, view, "> rf00015")
	assert.NotContains(t, view, "rf00000")
	assert.Contains(t, view, "rf00011")
}
