package models

import (
	"fmt"
	"io/fs"
	"os"
)

type statFunc func(name string) (fs.FileInfo, error)

// Classify turns a filesystem path into exactly one Entry. A symbolic link to
// a directory becomes a linked DirectoryEntry, which traversal does not
// descend into; any other link is a FileEntry sized by its target. Any
// failure (missing path, permission denied, unreadable attributes) yields an
// ErrorEntry; Classify never panics and never returns nil.
func Classify(path string, depth int) Entry {
	return classify(path, depth, os.Lstat)
}

// ClassifyFollow is Classify for a traversal root: a symbolic link to a
// directory is resolved and classified as a directory.
func ClassifyFollow(path string, depth int) Entry {
	return classify(path, depth, os.Stat)
}

func classify(path string, depth int, stat statFunc) Entry {
	info, err := stat(path)
	if err != nil {
		return NewErrorEntry(path, depth, err)
	}

	hidden, err := IsHidden(path)
	if err != nil {
		return NewErrorEntry(path, depth, fmt.Errorf("check hidden status: %w", err))
	}

	if info.IsDir() {
		return NewDirectoryEntry(path, depth, !hidden)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		target, err := os.Stat(path)
		if err != nil {
			return NewFileEntryUnknownSize(path, depth, !hidden)
		}
		if target.IsDir() {
			return NewLinkedDirectoryEntry(path, depth, !hidden)
		}
		info = target
	}
	return NewFileEntry(path, depth, !hidden, info.Size())
}
