// Package families provides the family picker view for the TUI.
package families

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driving"
)

// errNoService is reported when the view has no family service.
var errNoService = errors.New("family service not available")

// View lists the families available from the source.
type View struct {
	ctx     context.Context
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.FamilyService
	list    *list.FamilyList

	width   int
	height  int
	loading bool
	err     error
}

// NewView creates a new family picker.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.FamilyService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		ctx:     context.Background(),
		styles:  s,
		keymap:  km,
		service: service,
		list:    list.NewFamilyList(s),
	}
}

// WithContext sets the context used to list families.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the family list.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadFamilies()
}

func (v *View) loadFamilies() tea.Cmd {
	ctx, service := v.ctx, v.service
	return func() tea.Msg {
		if service == nil {
			return messages.FamiliesLoaded{Err: errNoService}
		}
		ids, err := service.List(ctx)
		return messages.FamiliesLoaded{Families: ids, Err: err}
	}
}

// Update handles list navigation and selection.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.FamiliesLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.list.SetFamilies(msg.Families)
		}
		return v, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), v.keymap.Select) {
			id := v.list.SelectedFamily()
			if id == "" {
				return v, nil
			}
			return v, func() tea.Msg { return messages.FamilySelected{Identifier: id} }
		}
		v.list, _ = v.list.Update(msg)
	}
	return v, nil
}

// View renders the family list.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("RNA families"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading families..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
	default:
		b.WriteString(v.list.View())
	}
	return b.String()
}

// StatusText summarises the list for the status bar.
func (v *View) StatusText() string {
	if v.loading || v.err != nil {
		return ""
	}
	return fmt.Sprintf("%d families", v.list.Count())
}

// Selected returns the highlighted identifier.
func (v *View) Selected() string {
	return v.list.SelectedFamily()
}

// Loading reports whether the list is being fetched.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, max(height-2, 1))
}
