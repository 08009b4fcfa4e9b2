package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *AssetStore {
	t.Helper()
	store, err := New(t.TempDir())
	assert.NoError(t, err)
	return store
}

func TestAssetStore_PutAndReadStream(t *testing.T) {
	store := newTestStore(t)

	err := store.Put("red_car-abc123.glb", strings.NewReader("glb-bytes"))
	assert.NoError(t, err)
	assert.True(t, store.Exists("red_car-abc123.glb"))

	rc, err := store.ReadStream("red_car-abc123.glb")
	assert.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.Equal(t, "glb-bytes", string(data))
}

func TestAssetStore_ReadStream_NotFound(t *testing.T) {
	store := newTestStore(t)

	rc, err := store.ReadStream("missing.html")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, rc)
}

func TestAssetStore_Put_RejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		name     string
		fileName string
	}{
		{"parent traversal", "../etc/passwd"},
		{"separator", "a/b.glb"},
		{"uppercase", "Model.glb"},
		{"empty", ""},
		{"double dot", "a..b.glb"},
		{"space", "red car.glb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Put(tt.fileName, strings.NewReader("x"))
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}
}

func TestAssetStore_Delete_Idempotent(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Put("gone-1a2b3c.html", strings.NewReader("<html></html>")))
	assert.NoError(t, store.Delete("gone-1a2b3c.html"))
	assert.False(t, store.Exists("gone-1a2b3c.html"))

	// Second delete is a no-op.
	assert.NoError(t, store.Delete("gone-1a2b3c.html"))
}

func TestAssetStore_List_BySuffix(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Put("a-1.glb", strings.NewReader("a")))
	assert.NoError(t, store.Put("a-1.usdz", strings.NewReader("b")))
	assert.NoError(t, store.Put("a-1.html", strings.NewReader("c")))
	assert.NoError(t, store.Put("b-2.html", strings.NewReader("d")))

	names, err := store.List(".html")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"a-1.html", "b-2.html"}, names)
}

func TestAssetStore_List_SkipsTempFiles(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Put("a-1.html", strings.NewReader("a")))

	// Simulate a crashed write that left a temp sibling behind.
	tmp := filepath.Join(store.Root(), "b-2.html.tmp42")
	assert.NoError(t, os.WriteFile(tmp, []byte("partial"), 0o644))

	names, err := store.List(".html")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a-1.html"}, names)
}

func TestAssetStore_Put_Overwrite(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Put("a-1.html", strings.NewReader("first")))
	assert.NoError(t, store.Put("a-1.html", strings.NewReader("second")))

	rc, err := store.ReadStream("a-1.html")
	assert.NoError(t, err)
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	assert.Equal(t, "second", string(data))
}

func TestNew_RequiresRoot(t *testing.T) {
	store, err := New("  ")
	assert.Error(t, err)
	assert.Nil(t, store)
}
