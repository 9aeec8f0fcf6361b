package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name    string
		wantExt string
		wantOK  bool
	}{
		{"report.txt", "txt", true},
		{"archive.tar.gz", "gz", true},
		{"Photo.JPG", "JPG", true},
		{"Makefile", "", false},
		{".bashrc", "", false},
		{".config.yaml", "yaml", true},
		{"trailing.", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := ExtensionOf(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestConstructorsNormalizeNegativeDepth(t *testing.T) {
	assert.Equal(t, 0, NewFileEntry("/tmp/a.txt", -3, true, 1).DepthLevel())
	assert.Equal(t, 0, NewFileEntryUnknownSize("/tmp/a.txt", -1, true).DepthLevel())
	assert.Equal(t, 0, NewDirectoryEntry("/tmp/d", -7, true).DepthLevel())
	assert.Equal(t, 0, NewErrorEntry("/tmp/x", -2, nil).DepthLevel())
}

func TestFileEntry(t *testing.T) {
	e := NewFileEntry("/data/report.csv", 2, true, 2048)

	assert.Equal(t, KindFile, e.Kind())
	assert.Equal(t, "report.csv", e.BaseName())
	assert.Equal(t, "/data/report.csv", e.Path())
	assert.Equal(t, 2, e.DepthLevel())
	assert.True(t, e.IsVisible())

	size, ok := e.SizeInBytes()
	assert.True(t, ok)
	assert.Equal(t, int64(2048), size)

	ext, ok := e.Extension()
	assert.True(t, ok)
	assert.Equal(t, "csv", ext)

	_, ok = NewFileEntryUnknownSize("/data/x", 0, true).SizeInBytes()
	assert.False(t, ok)
}

func TestDirectoryEntry(t *testing.T) {
	e := NewDirectoryEntry("/data/.cache", 1, false)

	assert.Equal(t, KindDirectory, e.Kind())
	assert.Equal(t, ".cache", e.BaseName())
	assert.Equal(t, 1, e.DepthLevel())
	assert.False(t, e.IsVisible())
}

func TestErrorEntryIsAlwaysVisible(t *testing.T) {
	e := NewErrorEntry("/root/secret", 3, errors.New("permission denied"))

	assert.Equal(t, KindError, e.Kind())
	assert.Equal(t, ErrorBaseName, e.BaseName())
	assert.Equal(t, "/root/secret", e.Path())
	assert.Equal(t, 3, e.DepthLevel())
	assert.True(t, e.IsVisible())
	assert.Equal(t, "permission denied", e.Reason())
	assert.Empty(t, NewErrorEntry("/x", 0, nil).Reason())
}

func TestEntriesAreValueObjects(t *testing.T) {
	var a, b Entry = NewFileEntry("/a.txt", 1, true, 10), NewFileEntry("/a.txt", 1, true, 10)
	assert.True(t, a == b)

	var c Entry = NewFileEntry("/a.txt", 2, true, 10)
	assert.False(t, a == c)

	var d Entry = NewDirectoryEntry("/a.txt", 1, true)
	assert.False(t, a == d)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "directory", KindDirectory.String())
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
