package fileutil

import (
	"strings"

	"github.com/harrison/treewalk/internal/models"
)

// Filter is a predicate over entries. The visitor applies it to files only;
// directories and error entries are never filtered.
type Filter func(models.Entry) bool

// AcceptAll is the identity filter.
func AcceptAll(models.Entry) bool {
	return true
}

// NameContains passes entries whose base name contains substr (case-sensitive).
func NameContains(substr string) Filter {
	return func(e models.Entry) bool {
		return strings.Contains(e.BaseName(), substr)
	}
}

// ExtensionEquals passes files whose extension is exactly ext. Files without
// an extension never pass.
func ExtensionEquals(ext string) Filter {
	return func(e models.Entry) bool {
		f, ok := e.(models.FileEntry)
		if !ok {
			return false
		}
		got, ok := f.Extension()
		return ok && got == ext
	}
}

// SizeBetween passes files whose size is known and within [minSize, maxSize].
func SizeBetween(minSize, maxSize int64) Filter {
	return func(e models.Entry) bool {
		f, ok := e.(models.FileEntry)
		if !ok {
			return false
		}
		size, known := f.SizeInBytes()
		return known && size >= minSize && size <= maxSize
	}
}

// And combines filters by logical AND. Nil filters are ignored and an empty
// combination accepts everything.
func And(filters ...Filter) Filter {
	active := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			active = append(active, f)
		}
	}
	if len(active) == 0 {
		return AcceptAll
	}
	return func(e models.Entry) bool {
		for _, f := range active {
			if !f(e) {
				return false
			}
		}
		return true
	}
}

// FilterOptions configures the file filters built from command-line input.
type FilterOptions struct {
	// Name is a substring the base name must contain
	Name string
	// Extension must equal the file extension exactly (a leading dot is ignored)
	Extension string
	// LimitSize enables the MinSize/MaxSize bounds (inclusive)
	LimitSize bool
	MinSize   int64
	MaxSize   int64
}

// IsZero reports whether no filter is configured.
func (o FilterOptions) IsZero() bool {
	return o.Name == "" && o.Extension == "" && !o.LimitSize
}

// Build combines the configured filters by AND.
func (o FilterOptions) Build() Filter {
	var filters []Filter
	if o.Name != "" {
		filters = append(filters, NameContains(o.Name))
	}
	if o.Extension != "" {
		filters = append(filters, ExtensionEquals(strings.TrimPrefix(o.Extension, ".")))
	}
	if o.LimitSize {
		filters = append(filters, SizeBetween(o.MinSize, o.MaxSize))
	}
	return And(filters...)
}
