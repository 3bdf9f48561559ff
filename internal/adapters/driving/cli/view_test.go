package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

func viewTestCmd(t *testing.T, stdin string) {
	t.Helper()
	viewCmd.SetContext(context.Background())
	viewCmd.SetIn(strings.NewReader(stdin))
	t.Cleanup(func() {
		viewCmd.SetIn(nil)
		viewCmd.SetContext(nil)
	})
}

func TestNewViewerApp_FamilyList(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()
	viewTestCmd(t, "")

	app, err := newViewerApp(viewCmd, nil)

	require.NoError(t, err)
	assert.Equal(t, messages.ViewFamilies, app.CurrentView())
	assert.Nil(t, app.Alignment().Family())
}

func TestNewViewerApp_LocalFile(t *testing.T) {
	family, _, cleanup := setupTestServices()
	defer cleanup()
	viewTestCmd(t, "")

	path := writeTempFile(t, "RF03116.sto", hairpinStockholm)

	app, err := newViewerApp(viewCmd, []string{path})

	require.NoError(t, err)
	assert.Equal(t, hairpinStockholm, family.lastContent)
	assert.Equal(t, messages.ViewAlignment, app.CurrentView())
	require.NotNil(t, app.Alignment().Family())
	assert.Equal(t, "RF03116", app.Alignment().Family().Identifier)
}

func TestNewViewerApp_Stdin(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()
	viewTestCmd(t, hairpinStockholm)

	app, err := newViewerApp(viewCmd, []string{"-"})

	require.NoError(t, err)
	require.NotNil(t, app.Alignment().Family())
	assert.Equal(t, "stdin", app.Alignment().Family().Identifier)
}

func TestNewViewerApp_Identifier(t *testing.T) {
	family, _, cleanup := setupTestServices()
	defer cleanup()
	viewTestCmd(t, "")

	app, err := newViewerApp(viewCmd, []string{"RF03116"})
	require.NoError(t, err)
	assert.Equal(t, messages.ViewAlignment, app.CurrentView())

	batch, ok := app.Init()().(tea.BatchMsg)
	require.True(t, ok)

	var loaded *messages.FamilyLoaded
	for _, cmd := range batch {
		if cmd == nil {
			continue
		}
		if msg, ok := cmd().(messages.FamilyLoaded); ok {
			loaded = &msg
		}
	}
	require.NotNil(t, loaded)
	assert.Equal(t, "RF03116", loaded.Identifier)
	assert.Equal(t, "RF03116", family.lastID)
}

func TestNewViewerApp_ParseError(t *testing.T) {
	family, _, cleanup := setupTestServices()
	defer cleanup()
	family.err = domain.ErrEmptyInput
	viewTestCmd(t, "   ")

	_, err := newViewerApp(viewCmd, []string{"-"})

	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestIsLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.sto")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	assert.True(t, isLocalFile("-"))
	assert.True(t, isLocalFile(path))
	assert.False(t, isLocalFile(dir))
	assert.False(t, isLocalFile("RF03116"))
}

func TestLocalFamily(t *testing.T) {
	doc := hairpinDocument()

	f := localFamily(filepath.Join("testdata", "rf00005.stockholm"), doc)

	assert.Equal(t, "rf00005", f.Identifier)
	assert.True(t, filepath.IsAbs(f.Source))
	assert.Same(t, doc, f.Document)

	stdin := localFamily("-", doc)
	assert.Equal(t, "stdin", stdin.Identifier)
	assert.Equal(t, "stdin", stdin.Source)
}

func TestViewCmd_TooManyArgs(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, nil, "view", "a", "b")

	assert.Error(t, err)
}
