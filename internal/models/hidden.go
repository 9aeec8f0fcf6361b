package models

import (
	"path/filepath"
	"strings"
)

// IsHidden reports whether the node at path is hidden. A name starting with
// a dot is always hidden; on Windows the hidden file attribute also counts.
// The error is non-nil only when platform attributes could not be read.
func IsHidden(path string) (bool, error) {
	if IsHiddenName(filepath.Base(path)) {
		return true, nil
	}
	return hasHiddenAttribute(path)
}

// IsHiddenName applies the dotfile convention to a bare name. The special
// names "." and ".." are not hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
