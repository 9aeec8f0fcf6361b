package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies which Entry variant a value is.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindError
)

// String returns the lowercase kind name used in structured output.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is a classified filesystem node produced by a traversal.
//
// The set of implementations is closed: FileEntry, DirectoryEntry and
// ErrorEntry. Entries are immutable value objects; two entries built from the
// same path at the same depth compare equal with ==.
type Entry interface {
	// Kind reports the active variant.
	Kind() Kind
	// BaseName is the last path element. ErrorEntry returns ErrorBaseName.
	BaseName() string
	// Path is the path the entry was classified from.
	Path() string
	// DepthLevel is the number of directory boundaries between the traversal
	// root and this entry.
	DepthLevel() int
	// IsVisible reports whether the entry is not hidden. Always true for
	// ErrorEntry.
	IsVisible() bool

	sealed()
}

// ErrorBaseName is the placeholder base name carried by every ErrorEntry.
const ErrorBaseName = "<inaccessible>"

func normalizeDepth(depth int) int {
	if depth < 0 {
		return 0
	}
	return depth
}

// FileEntry is any non-directory node: regular files, symlinks, devices.
type FileEntry struct {
	path      string
	name      string
	depth     int
	visible   bool
	size      int64
	sizeKnown bool
}

// NewFileEntry builds a FileEntry whose size is known.
func NewFileEntry(path string, depth int, visible bool, size int64) FileEntry {
	return FileEntry{
		path:      path,
		name:      filepath.Base(path),
		depth:     normalizeDepth(depth),
		visible:   visible,
		size:      size,
		sizeKnown: true,
	}
}

// NewFileEntryUnknownSize builds a FileEntry whose size could not be read.
func NewFileEntryUnknownSize(path string, depth int, visible bool) FileEntry {
	return FileEntry{
		path:    path,
		name:    filepath.Base(path),
		depth:   normalizeDepth(depth),
		visible: visible,
	}
}

func (FileEntry) Kind() Kind         { return KindFile }
func (e FileEntry) BaseName() string { return e.name }
func (e FileEntry) Path() string     { return e.path }
func (e FileEntry) DepthLevel() int  { return e.depth }
func (e FileEntry) IsVisible() bool  { return e.visible }
func (FileEntry) sealed()            {}

// SizeInBytes returns the file size and whether it was readable.
func (e FileEntry) SizeInBytes() (int64, bool) {
	return e.size, e.sizeKnown
}

// Extension returns the file extension without the dot, or false when the
// name has none.
func (e FileEntry) Extension() (string, bool) {
	return ExtensionOf(e.name)
}

// ExtensionOf extracts the substring after the last dot of name. A dot in
// first or last position does not start an extension, so ".bashrc" and
// "archive." have none. Case is preserved.
func ExtensionOf(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}

// DirectoryEntry represents a directory node. Its children are separate
// entries one level deeper.
type DirectoryEntry struct {
	path    string
	name    string
	depth   int
	visible bool
	link    bool
}

// NewDirectoryEntry builds a DirectoryEntry.
func NewDirectoryEntry(path string, depth int, visible bool) DirectoryEntry {
	return DirectoryEntry{
		path:    path,
		name:    filepath.Base(path),
		depth:   normalizeDepth(depth),
		visible: visible,
	}
}

// NewLinkedDirectoryEntry builds a DirectoryEntry for a symbolic link that
// resolves to a directory. Traversal lists it but never descends into it.
func NewLinkedDirectoryEntry(path string, depth int, visible bool) DirectoryEntry {
	e := NewDirectoryEntry(path, depth, visible)
	e.link = true
	return e
}

func (DirectoryEntry) Kind() Kind         { return KindDirectory }
func (e DirectoryEntry) BaseName() string { return e.name }
func (e DirectoryEntry) Path() string     { return e.path }
func (e DirectoryEntry) DepthLevel() int  { return e.depth }
func (e DirectoryEntry) IsVisible() bool  { return e.visible }
func (DirectoryEntry) sealed()            {}

// IsLink reports whether the entry was reached through a symbolic link.
func (e DirectoryEntry) IsLink() bool {
	return e.link
}

// ErrorEntry records a path that could not be classified or read.
type ErrorEntry struct {
	path   string
	depth  int
	reason string
}

// NewErrorEntry builds an ErrorEntry. err may be nil when no underlying cause
// is available.
func NewErrorEntry(path string, depth int, err error) ErrorEntry {
	e := ErrorEntry{
		path:  path,
		depth: normalizeDepth(depth),
	}
	if err != nil {
		e.reason = err.Error()
	}
	return e
}

func (ErrorEntry) Kind() Kind        { return KindError }
func (ErrorEntry) BaseName() string  { return ErrorBaseName }
func (e ErrorEntry) Path() string    { return e.path }
func (e ErrorEntry) DepthLevel() int { return e.depth }
func (ErrorEntry) IsVisible() bool   { return true }
func (ErrorEntry) sealed()           {}

// Reason is the text of the failure that produced the entry, if any.
func (e ErrorEntry) Reason() string {
	return e.reason
}
