// Package input provides text input components for the TUI.
package input

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/styles"
)

// ErrNoColumn is returned by Column when the input is empty.
var ErrNoColumn = errors.New("no column entered")

// ColumnInput wraps a bubbles textinput that only accepts a column number.
type ColumnInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewColumnInput creates a new column input component.
func NewColumnInput(s *styles.Styles) *ColumnInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "column number"
	ti.Focus()
	ti.CharLimit = 7
	ti.Width = 16

	return &ColumnInput{
		textinput: ti,
		styles:    s,
		width:     16,
	}
}

// Init initialises the column input.
func (c *ColumnInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages. Typed runes other than digits are dropped.
func (c *ColumnInput) Update(msg tea.Msg) (*ColumnInput, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyRunes {
		for _, r := range k.Runes {
			if r < '0' || r > '9' {
				return c, nil
			}
		}
	}

	var cmd tea.Cmd
	c.textinput, cmd = c.textinput.Update(msg)
	return c, cmd
}

// View renders the column input.
func (c *ColumnInput) View() string {
	label := c.styles.Title.Render("Go to column: ")
	field := c.styles.InputField.Render(c.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (c *ColumnInput) Value() string {
	return c.textinput.Value()
}

// SetValue sets the input value.
func (c *ColumnInput) SetValue(value string) {
	c.textinput.SetValue(value)
}

// Column parses the entered column number.
func (c *ColumnInput) Column() (int, error) {
	v := strings.TrimSpace(c.textinput.Value())
	if v == "" {
		return 0, ErrNoColumn
	}
	return strconv.Atoi(v)
}

// Focus sets focus on the input.
func (c *ColumnInput) Focus() tea.Cmd {
	return c.textinput.Focus()
}

// Blur removes focus from the input.
func (c *ColumnInput) Blur() {
	c.textinput.Blur()
}

// Focused returns whether the input is focused.
func (c *ColumnInput) Focused() bool {
	return c.textinput.Focused()
}

// SetWidth sets the width of the input.
func (c *ColumnInput) SetWidth(width int) {
	c.width = width
	c.textinput.Width = max(width-20, 8)
}

// Width returns the current width.
func (c *ColumnInput) Width() int {
	return c.width
}

// Reset clears the input.
func (c *ColumnInput) Reset() {
	c.textinput.Reset()
}
