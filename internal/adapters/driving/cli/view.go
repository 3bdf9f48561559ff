package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui"
	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

var viewCmd = &cobra.Command{
	Use:   "view [file|identifier]",
	Short: "Browse an alignment in the terminal viewer",
	Long: `Open the interactive alignment viewer.

With a file argument the file is parsed locally. Any other argument is
fetched from the configured source. Without an argument the viewer
starts on the list of families available from the source.

Controls:
  ←/h, →/l     - Move one column
  ↑/k, ↓/j     - Move one row
  PgUp/PgDn    - Scroll one window of columns
  Home/End     - First / last column
  p            - Jump to the base-pair partner
  g            - Go to column
  ?            - Toggle help
  q            - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in viewer: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("viewer panic: %v", r)
		}
	}()

	app, err := newViewerApp(cmd, args)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}
	if app.Err() != nil {
		return app.Err()
	}
	return nil
}

// newViewerApp builds the viewer for a local file, a family identifier
// or the family list.
func newViewerApp(cmd *cobra.Command, args []string) (*tui.App, error) {
	if err := requireFamilyService(); err != nil {
		return nil, err
	}

	app, err := tui.NewApp(&tui.Ports{Family: familyService})
	if err != nil {
		return nil, fmt.Errorf("failed to create viewer: %w", err)
	}
	opts := parseOptions(cmd, false, false)
	app.WithContext(cmd.Context()).WithParseOptions(opts)

	if len(args) == 0 {
		return app, nil
	}

	target := args[0]
	if !isLocalFile(target) {
		return app.WithIdentifier(target), nil
	}

	content, err := readInput(cmd, target)
	if err != nil {
		return nil, err
	}
	doc, err := familyService.Parse(cmd.Context(), content, opts)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	return app.WithFamily(localFamily(target, doc)), nil
}

func isLocalFile(target string) bool {
	if target == "-" {
		return true
	}
	info, err := os.Stat(target)
	return err == nil && !info.IsDir()
}

// localFamily names a parsed file after its base name.
func localFamily(path string, doc *domain.AlignmentDocument) *domain.Family {
	if path == "-" {
		return &domain.Family{Identifier: "stdin", Source: "stdin", Document: doc}
	}
	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	source := path
	if abs, err := filepath.Abs(path); err == nil {
		source = abs
	}
	return &domain.Family{Identifier: id, Source: source, Document: doc}
}
