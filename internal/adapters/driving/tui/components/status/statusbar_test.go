package status

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, Position{}, bar.Position())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_PositionText(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		message string
		want    string
	}{
		{
			name: "paired column",
			pos:  Position{Column: 45, Columns: 80, Row: 3, Rows: 10, Partner: 12},
			want: "col 45/80  row 3/10  pair 12-45",
		},
		{
			name: "unpaired column",
			pos:  Position{Column: 2, Columns: 4, Row: 1, Rows: 2},
			want: "col 2/4  row 1/2  unpaired",
		},
		{
			name: "no rows",
			pos:  Position{Column: 1, Columns: 4, Partner: 4},
			want: "col 1/4  pair 1-4",
		},
		{
			name:    "with message",
			pos:     Position{Column: 1, Columns: 4},
			message: "no partner",
			want:    "col 1/4  unpaired  no partner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetPosition(tt.pos)
			bar.SetMessage(tt.message)
			assert.Equal(t, tt.want, bar.PositionText())
		})
	}
}

func TestStatusBar_View(t *testing.T) {
	t.Run("ready without position", func(t *testing.T) {
		bar := NewBar(nil, nil)
		assert.Contains(t, bar.View(), "Ready")
		assert.Contains(t, bar.View(), "q: quit")
	})

	t.Run("position", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetWidth(120)
		bar.SetPosition(Position{Column: 1, Columns: 4, Partner: 4})
		assert.Contains(t, bar.View(), "pair 1-4")
	})

	t.Run("loading", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetState(StateLoading)
		assert.Contains(t, bar.View(), "Loading...")
	})

	t.Run("error with message", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetState(StateError)
		bar.SetMessage("not found")
		assert.Contains(t, bar.View(), "Error: not found")
	})

	t.Run("error without message", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetState(StateError)
		assert.Contains(t, bar.View(), "Error")
	})

	t.Run("help", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetState(StateHelp)
		assert.Contains(t, bar.View(), "Help")
	})

	t.Run("list shows list hints", func(t *testing.T) {
		bar := NewBar(nil, nil)
		bar.SetWidth(120)
		bar.SetState(StateList)
		bar.SetMessage("12 families")
		view := bar.View()
		assert.Contains(t, view, "12 families")
		assert.Contains(t, view, "enter: open")
	})
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetPosition(Position{Column: 1, Columns: 2})

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, Position{}, bar.Position())
}

func TestStatusBar_ViewFitsOneLine(t *testing.T) {
	for _, width := range []int{80, 120} {
		bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())
		bar.SetWidth(width)
		bar.SetPosition(Position{Column: 45, Columns: 80, Row: 3, Rows: 10, Partner: 12})

		view := bar.View()

		assert.NotContains(t, view, "\n", "width %d", width)
		assert.Equal(t, width, lipgloss.Width(view), "width %d", width)
		assert.True(t, strings.HasSuffix(strings.TrimRight(view, " "), "q: quit"), "width %d", width)
	}
}
