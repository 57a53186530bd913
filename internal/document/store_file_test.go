package document

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("creates the directory and round-trips bytes", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "uploads", "nested")
		store, err := NewFileStore(dir, 0)
		require.NoError(t, err)

		path, err := store.Save("d1-notes.txt", strings.NewReader("hello"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "d1-notes.txt"), path)

		f, err := store.Open(path)
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("rejects content over the cap and leaves no file", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir, 4)
		require.NoError(t, err)

		_, err = store.Save("d1-big.txt", strings.NewReader("0123456789"))
		require.ErrorIs(t, err, ErrTooLarge)

		_, statErr := os.Stat(filepath.Join(dir, "d1-big.txt"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("content exactly at the cap is kept whole", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), 4)
		require.NoError(t, err)

		path, err := store.Save("d1-fit.txt", strings.NewReader("0123"))
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "0123", string(data))
	})

	t.Run("Remove tolerates missing files", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir(), 0)
		require.NoError(t, err)

		path, err := store.Save("d1-x.txt", strings.NewReader("x"))
		require.NoError(t, err)
		require.NoError(t, store.Remove(path))
		require.NoError(t, store.Remove(path))
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestStoredName(t *testing.T) {
	assert.Equal(t, "d1-passport.pdf", StoredName("d1", "passport.pdf"))
	assert.Equal(t, "d1-evil.pdf", StoredName("d1", "../../evil.pdf"))
	assert.Equal(t, "d1-evil.pdf", StoredName("d1", `..\..\evil.pdf`))
	assert.Equal(t, "d1-upload", StoredName("d1", ""))
}
