package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSaveAndRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	filename, err := store.Save("abc123_v1", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "abc123_v1.png", filename)

	data, err := store.Read(filename)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestFileStoreExtensionFromMimeType(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	filename, err := store.Save("abc123_v1", []byte("<svg/>"), "image/svg+xml")
	require.NoError(t, err)
	assert.Equal(t, "abc123_v1.svg", filename)

	filename, err = store.Save("abc123_v2", []byte("jpg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "abc123_v2.jpg", filename)
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	secret := filepath.Join(dir, "..", "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o644))

	for _, name := range []string{"../secret.txt", "a/b.png", `a\b.png`, "..", ""} {
		_, err := store.Read(name)
		assert.ErrorIs(t, err, ErrInvalidFilename, "name %q", name)

		_, err = store.Save(name, []byte("x"), "image/png")
		assert.ErrorIs(t, err, ErrInvalidFilename, "name %q", name)
	}
}

func TestFileStoreReadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Read("nope.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logos")

	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
