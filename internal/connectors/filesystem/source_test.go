package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/core/ports/driven"
)

const sample = "# STOCKHOLM 1.0\nseqA ACGU\n//\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNew(t *testing.T) {
	source := New("/tmp/alignments", domain.DefaultKeyFormat)

	require.NotNil(t, source)
	assert.Equal(t, "filesystem", source.Type())
	assert.Equal(t, "/tmp/alignments", source.RootPath())

	var _ driven.WatchableSource = source
}

func TestSource_Path(t *testing.T) {
	tests := []struct {
		name      string
		keyFormat string
		id        string
		want      string
	}{
		{"default lowercases", "", "RF00005", filepath.Join("root", "rf00005.sto")},
		{"preserves case", "{id}.stk", "RF00005", filepath.Join("root", "RF00005.stk")},
		{"subdirectory", "families/{id_lower}.sto", "RF1", filepath.Join("root", "families", "rf1.sto")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New("root", tt.keyFormat).Path(tt.id))
		})
	}
}

func TestSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rf00005.sto", sample)
	source := New(dir, domain.DefaultKeyFormat)

	raw, err := source.Fetch(context.Background(), "RF00005")
	require.NoError(t, err)

	abs, _ := filepath.Abs(path)
	assert.Equal(t, "RF00005", raw.Identifier)
	assert.Equal(t, "file://"+abs, raw.URI)
	assert.Equal(t, sample, raw.Text())
	assert.Equal(t, int64(len(sample)), raw.Metadata["size"])
	assert.False(t, raw.FetchedAt.IsZero())
	assert.Equal(t, abs, ResolvePath(raw.URI))
}

func TestSource_Fetch_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		source := New(t.TempDir(), "")
		_, err := source.Fetch(context.Background(), "RF99999")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("path is a directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "rf00001.sto"), 0755))
		source := New(dir, "")
		_, err := source.Fetch(context.Background(), "RF00001")
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(t.TempDir(), "").Fetch(ctx, "RF00001")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSource_List(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rf00005.sto", sample)
	writeFile(t, dir, "rf00001.sto", sample)
	writeFile(t, dir, "README.md", "docs")
	writeFile(t, dir, ".draft.sto", sample)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.sto"), 0755))

	ids, err := New(dir, "").List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"rf00001", "rf00005"}, ids)
}

func TestSource_List_MissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), "").List(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestHandleFsEvent(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "rf00005.sto", sample)
	subdir := filepath.Join(dir, "group.sto")
	require.NoError(t, os.Mkdir(subdir, 0755))
	source := New(dir, "")

	tests := []struct {
		name   string
		path   string
		op     fsnotify.Op
		wantID string
		wantOK bool
	}{
		{"create", file, fsnotify.Create, "rf00005", true},
		{"write", file, fsnotify.Write, "rf00005", true},
		{"write with chmod", file, fsnotify.Write | fsnotify.Chmod, "rf00005", true},
		{"remove", filepath.Join(dir, "gone.sto"), fsnotify.Remove, "gone", true},
		{"rename", filepath.Join(dir, "moved.sto"), fsnotify.Rename, "moved", true},
		{"chmod only", file, fsnotify.Chmod, "", false},
		{"directory", subdir, fsnotify.Create, "", false},
		{"hidden file", filepath.Join(dir, ".swap.sto"), fsnotify.Write, "", false},
		{"other extension", filepath.Join(dir, "notes.txt"), fsnotify.Write, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := source.handleFsEvent(fsnotify.Event{Name: tt.path, Op: tt.op})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestSource_Watch(t *testing.T) {
	dir := t.TempDir()
	source := New(dir, "")
	defer source.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- source.Watch(ctx, func(id string) { changes <- id })
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, dir, "rf00010.sto", sample)

	select {
	case id := <-changes:
		assert.Equal(t, "rf00010", id)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestSource_WatchAfterClose(t *testing.T) {
	source := New(t.TempDir(), "")
	require.NoError(t, source.Close())

	err := source.Watch(context.Background(), func(string) {})
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
