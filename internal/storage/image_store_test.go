package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/storage"
)

func newTestStore(t *testing.T) (storage.ImageStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewDiskImageStore(config.UploadConfig{
		Dir:          dir,
		PublicPrefix: "/uploads",
	})
	require.NoError(t, err)
	return store, dir
}

func TestSaveWritesRetrievableBytes(t *testing.T) {
	store, dir := newTestStore(t)

	publicPath, err := store.Save("foto.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
	assert.True(t, strings.HasSuffix(publicPath, "-foto.jpg"))

	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(publicPath)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(stored))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Save("foto.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("foto.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveStripsDirectoryComponents(t *testing.T) {
	store, dir := newTestStore(t)

	publicPath, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(publicPath, "-passwd"))

	// nothing escaped the upload dir
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
