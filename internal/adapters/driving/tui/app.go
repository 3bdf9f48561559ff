package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/views/alignment"
	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/views/families"
	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	opts   domain.ParseOptions

	familiesView  *families.View
	alignmentView *alignment.View
	statusBar     *status.Bar
	columnInput   *input.ColumnInput
	help          help.Model

	// identifier is fetched on Init when no family was supplied.
	identifier string

	// fromList is set once the user opened an alignment from the list,
	// so esc can return to it.
	fromList bool

	currentView messages.ViewType
	showHelp    bool
	prompting   bool
	loading     bool
	err         error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// Without WithFamily or WithIdentifier it starts on the family list.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		opts:          domain.ParseOptions{Features: true},
		familiesView:  families.NewView(s, km, ports.Family),
		alignmentView: alignment.NewView(s, km),
		statusBar:     status.NewBar(s, km),
		columnInput:   input.NewColumnInput(s),
		help:          help.New(),
		currentView:   messages.ViewFamilies,
		width:         80,
		height:        24,
	}, nil
}

// WithContext sets the context for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.familiesView.WithContext(ctx)
	return a
}

// WithParseOptions sets the options used when fetching families.
func (a *App) WithParseOptions(opts domain.ParseOptions) *App {
	a.opts = opts
	return a
}

// WithFamily shows an already parsed family.
func (a *App) WithFamily(f *domain.Family) *App {
	a.alignmentView.SetFamily(f)
	a.currentView = messages.ViewAlignment
	a.syncStatus()
	return a
}

// WithIdentifier fetches and shows a family on Init.
func (a *App) WithIdentifier(identifier string) *App {
	a.identifier = identifier
	a.currentView = messages.ViewAlignment
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	title := tea.SetWindowTitle("rnamsa")

	switch {
	case a.alignmentView.Family() != nil:
		return title
	case a.identifier != "":
		a.loading = true
		a.syncStatus()
		return tea.Batch(title, a.loadFamily(a.identifier))
	default:
		cmd := a.familiesView.Init()
		a.syncStatus()
		return tea.Batch(title, cmd)
	}
}

func (a *App) loadFamily(identifier string) tea.Cmd {
	ctx, svc, opts := a.ctx, a.ports.Family, a.opts
	return func() tea.Msg {
		f, err := svc.Get(ctx, identifier, opts)
		return messages.FamilyLoaded{Identifier: identifier, Family: f, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		var quit bool
		cmd, quit = a.handleKey(msg)
		if quit {
			return a, tea.Quit
		}

	case messages.FamiliesLoaded:
		a.familiesView, cmd = a.familiesView.Update(msg)

	case messages.FamilySelected:
		a.loading = true
		a.err = nil
		a.fromList = true
		cmd = a.loadFamily(msg.Identifier)

	case messages.FamilyLoaded:
		a.loading = false
		a.err = msg.Err
		if msg.Err == nil {
			a.alignmentView.SetFamily(msg.Family)
			a.currentView = messages.ViewAlignment
		}

	case messages.ColumnRequested:
		a.alignmentView, cmd = a.alignmentView.Update(msg)

	case messages.ErrorOccurred:
		a.err = msg.Err
	}

	a.syncStatus()
	return a, cmd
}

// handleKey routes a key press. It reports true when the app should quit.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	k := msg.String()
	if k == "ctrl+c" {
		return nil, true
	}

	if a.prompting {
		return a.handlePrompt(msg), false
	}

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return nil, true
	case keymap.Matches(k, a.keymap.Help):
		a.showHelp = !a.showHelp
		return nil, false
	case a.showHelp && keymap.Matches(k, a.keymap.Back):
		a.showHelp = false
		return nil, false
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewFamilies:
		a.familiesView, cmd = a.familiesView.Update(msg)

	case messages.ViewAlignment:
		switch {
		case keymap.Matches(k, a.keymap.Back) && a.fromList:
			a.currentView = messages.ViewFamilies
			a.err = nil
		case keymap.Matches(k, a.keymap.GoTo) && a.alignmentView.Family() != nil:
			a.prompting = true
			a.columnInput.Reset()
			cmd = a.columnInput.Focus()
		default:
			a.alignmentView, cmd = a.alignmentView.Update(msg)
		}

	case messages.ViewHelp:
	}
	return cmd, false
}

// handlePrompt feeds the column prompt until it is confirmed or cancelled.
func (a *App) handlePrompt(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Back):
		a.prompting = false
		return nil
	case keymap.Matches(k, a.keymap.Select):
		a.prompting = false
		col, err := a.columnInput.Column()
		if err != nil {
			return nil
		}
		return func() tea.Msg { return messages.ColumnRequested{Column: col} }
	}

	var cmd tea.Cmd
	a.columnInput, cmd = a.columnInput.Update(msg)
	return cmd
}

// syncStatus copies view state into the status bar.
func (a *App) syncStatus() {
	a.statusBar.Clear()
	switch {
	case a.loading:
		a.statusBar.SetState(status.StateLoading)
	case a.err != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(a.err.Error())
	case a.showHelp:
		a.statusBar.SetState(status.StateHelp)
	case a.currentView == messages.ViewFamilies:
		a.statusBar.SetState(status.StateList)
		a.statusBar.SetMessage(a.familiesView.StatusText())
	default:
		a.statusBar.SetPosition(a.alignmentView.Position())
		a.statusBar.SetMessage(a.alignmentView.Message())
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch {
	case a.showHelp:
		a.help.ShowAll = true
		body = a.styles.Title.Render("Keys") + "\n\n" + a.help.View(a.keymap)
	case a.currentView == messages.ViewFamilies:
		body = a.familiesView.View()
	default:
		body = a.alignmentView.View()
	}

	if a.prompting {
		body += "\n" + a.columnInput.View()
	}
	return body + "\n" + a.statusBar.View()
}

// SetDimensions resizes every component. One line is kept for the status bar.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	body := max(height-1, 1)
	a.familiesView.SetDimensions(width, body)
	a.alignmentView.SetDimensions(width, body)
	a.statusBar.SetWidth(width)
	a.columnInput.SetWidth(width)
	a.help.Width = width
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	if a.showHelp {
		return messages.ViewHelp
	}
	return a.currentView
}

// Alignment returns the alignment view.
func (a *App) Alignment() *alignment.View {
	return a.alignmentView
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// Prompting reports whether the column prompt is open.
func (a *App) Prompting() bool {
	return a.prompting
}
