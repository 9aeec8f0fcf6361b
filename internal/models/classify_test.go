package models

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tmpDir := t.TempDir()

	filePath := filepath.Join(tmpDir, "notes.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("hello"), 0644))

	dirPath := filepath.Join(tmpDir, "sub")
	require.NoError(t, os.Mkdir(dirPath, 0755))

	hiddenPath := filepath.Join(tmpDir, ".env")
	require.NoError(t, os.WriteFile(hiddenPath, []byte("A=1"), 0644))

	t.Run("regular file", func(t *testing.T) {
		for _, depth := range []int{0, 1, 5} {
			entry := Classify(filePath, depth)
			fileEntry, ok := entry.(FileEntry)
			require.True(t, ok, "expected FileEntry, got %T", entry)
			assert.Equal(t, depth, fileEntry.DepthLevel())
			assert.Equal(t, "notes.txt", fileEntry.BaseName())
			assert.True(t, fileEntry.IsVisible())

			size, known := fileEntry.SizeInBytes()
			assert.True(t, known)
			assert.Equal(t, int64(5), size)
		}
	})

	t.Run("directory", func(t *testing.T) {
		entry := Classify(dirPath, 2)
		assert.IsType(t, DirectoryEntry{}, entry)
		assert.Equal(t, 2, entry.DepthLevel())
		assert.True(t, entry.IsVisible())
	})

	t.Run("hidden file", func(t *testing.T) {
		entry := Classify(hiddenPath, 1)
		assert.IsType(t, FileEntry{}, entry)
		assert.False(t, entry.IsVisible())
	})

	t.Run("nonexistent path", func(t *testing.T) {
		missing := filepath.Join(tmpDir, "missing.txt")
		entry := Classify(missing, 4)
		errEntry, ok := entry.(ErrorEntry)
		require.True(t, ok, "expected ErrorEntry, got %T", entry)
		assert.Equal(t, missing, errEntry.Path())
		assert.Equal(t, 4, errEntry.DepthLevel())
		assert.True(t, errEntry.IsVisible())
		assert.NotEmpty(t, errEntry.Reason())
	})

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, Classify(filePath, 1), Classify(filePath, 1))
		assert.Equal(t, Classify(dirPath, 3), Classify(dirPath, 3))
		missing := filepath.Join(tmpDir, "gone")
		assert.Equal(t, Classify(missing, 0), Classify(missing, 0))
	})
}

func TestClassifySymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on Windows")
	}

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target")
	require.NoError(t, os.Mkdir(target, 0755))
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.Symlink(target, link))

	dangling := filepath.Join(tmpDir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "nowhere"), dangling))

	linked, ok := Classify(link, 1).(DirectoryEntry)
	require.True(t, ok, "a link to a directory is a directory")
	assert.True(t, linked.IsLink())
	assert.Equal(t, "link", linked.BaseName())
	assert.Equal(t, NewLinkedDirectoryEntry(link, 1, true), linked)

	root, ok := ClassifyFollow(link, 0).(DirectoryEntry)
	require.True(t, ok, "root links are resolved")
	assert.False(t, root.IsLink())

	fileTarget := filepath.Join(tmpDir, "data.csv")
	require.NoError(t, os.WriteFile(fileTarget, []byte("1,2,3"), 0644))
	fileLink := filepath.Join(tmpDir, "data-link.csv")
	require.NoError(t, os.Symlink(fileTarget, fileLink))
	assert.Equal(t, NewFileEntry(fileLink, 1, true, 5), Classify(fileLink, 1), "file links report the target size")

	entry := Classify(dangling, 1)
	require.IsType(t, FileEntry{}, entry)
	_, known := entry.(FileEntry).SizeInBytes()
	assert.False(t, known)
}

func TestIsHiddenName(t *testing.T) {
	assert.True(t, IsHiddenName(".git"))
	assert.True(t, IsHiddenName(".bashrc"))
	assert.False(t, IsHiddenName("."))
	assert.False(t, IsHiddenName(".."))
	assert.False(t, IsHiddenName("visible.txt"))
	assert.False(t, IsHiddenName(""))
}

func TestIsHidden(t *testing.T) {
	tmpDir := t.TempDir()
	visible := filepath.Join(tmpDir, "a.txt")
	require.NoError(t, os.WriteFile(visible, nil, 0644))

	hidden, err := IsHidden(visible)
	require.NoError(t, err)
	assert.False(t, hidden)

	hidden, err = IsHidden(filepath.Join(tmpDir, ".secret"))
	require.NoError(t, err)
	assert.True(t, hidden)
}
