package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/harrison/treewalk/internal/logger"
	"github.com/harrison/treewalk/internal/models"
)

// Logger receives traversal diagnostics.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogWarn(message string)
}

// Visitor walks a directory tree depth-first up to a maximum depth and
// collects classified entries.
//
// Children are visited in lexical order (os.ReadDir sorts by name), so the
// output is deterministic for a fixed directory content. The depth of the
// node being visited is passed down the recursion; Walk keeps no state
// between calls.
type Visitor struct {
	maxDepth int
	filter   Filter
	logger   Logger
}

// NewVisitor creates a Visitor. A negative maxDepth is treated as 0, a nil
// filter accepts every file and a nil logger discards diagnostics.
func NewVisitor(maxDepth int, filter Filter, log Logger) *Visitor {
	if maxDepth < 0 {
		maxDepth = 0
	}
	if filter == nil {
		filter = AcceptAll
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Visitor{
		maxDepth: maxDepth,
		filter:   filter,
		logger:   log,
	}
}

// MaxDepth returns the configured depth bound.
func (v *Visitor) MaxDepth() int {
	return v.maxDepth
}

// limit is the deepest level that may be emitted. With maxDepth 0 the
// immediate children of the root are still listed.
func (v *Visitor) limit() int {
	if v.maxDepth == 0 {
		return 1
	}
	return v.maxDepth
}

// Walk traverses root and returns the visible entries in pre-order.
//
// The root directory is emitted at depth 0 only when maxDepth > 0 and it is
// not hidden; its children are listed either way. A root that is a file
// yields that single file when it passes the filter. An error is returned
// only when the root itself cannot be read; failures below the root become
// ErrorEntry values and traversal continues with the siblings.
func (v *Visitor) Walk(root string) ([]models.Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access root: %w", err)
	}

	entries := make([]models.Entry, 0)

	if !info.IsDir() {
		v.visit(models.ClassifyFollow(root, 0), &entries)
		return entries, nil
	}

	children, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read root directory: %w", err)
	}

	if v.maxDepth > 0 {
		switch rootEntry := models.ClassifyFollow(root, 0).(type) {
		case models.DirectoryEntry:
			if rootEntry.IsVisible() {
				entries = append(entries, rootEntry)
			}
		default:
			entries = append(entries, rootEntry)
		}
	}

	v.logger.LogDebug(fmt.Sprintf("entering %s (depth limit %d)", root, v.limit()))
	v.walkChildren(root, children, 1, &entries)

	return entries, nil
}

func (v *Visitor) walkChildren(dir string, children []fs.DirEntry, depth int, out *[]models.Entry) {
	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		v.visit(models.Classify(path, depth), out)
	}
}

func (v *Visitor) visit(entry models.Entry, out *[]models.Entry) {
	switch e := entry.(type) {
	case models.ErrorEntry:
		v.logger.LogWarn(fmt.Sprintf("cannot classify %s: %s", e.Path(), e.Reason()))
		*out = append(*out, e)

	case models.FileEntry:
		if e.IsVisible() && v.filter(e) {
			v.logger.LogTrace(fmt.Sprintf("file %s (depth %d)", e.Path(), e.DepthLevel()))
			*out = append(*out, e)
		}

	case models.DirectoryEntry:
		if !e.IsVisible() {
			// Hidden directories are pruned with their subtree.
			return
		}
		*out = append(*out, e)
		v.descend(e, out)
	}
}

func (v *Visitor) descend(dir models.DirectoryEntry, out *[]models.Entry) {
	childDepth := dir.DepthLevel() + 1
	if childDepth > v.limit() {
		return
	}
	if dir.IsLink() {
		v.logger.LogDebug(fmt.Sprintf("not following link %s", dir.Path()))
		return
	}

	v.logger.LogDebug(fmt.Sprintf("entering %s (depth %d)", dir.Path(), childDepth))
	children, err := os.ReadDir(dir.Path())
	if err != nil {
		v.logger.LogWarn(fmt.Sprintf("cannot read directory %s: %v", dir.Path(), err))
		*out = append(*out, models.NewErrorEntry(dir.Path(), childDepth, err))
	}
	// os.ReadDir returns whatever it read before failing.
	v.walkChildren(dir.Path(), children, childDepth, out)
}
