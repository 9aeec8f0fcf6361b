package fileutil

import (
	"fmt"

	"github.com/harrison/treewalk/internal/logger"
	"github.com/harrison/treewalk/internal/models"
)

// EntriesProvider runs a Visitor against a root path and never fails: a
// root that cannot be traversed degrades to a single ErrorEntry.
type EntriesProvider struct {
	filter Filter
	logger Logger
}

// NewEntriesProvider creates a provider applying filter to every file.
func NewEntriesProvider(filter Filter, log Logger) *EntriesProvider {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &EntriesProvider{
		filter: filter,
		logger: log,
	}
}

// Entries lists root up to maxDepth. When the traversal cannot start, the
// result is one ErrorEntry carrying root at depth maxDepth.
func (p *EntriesProvider) Entries(root string, maxDepth int) []models.Entry {
	visitor := NewVisitor(maxDepth, p.filter, p.logger)

	entries, err := visitor.Walk(root)
	if err != nil {
		p.logger.LogWarn(fmt.Sprintf("traversal of %s failed: %v", root, err))
		return []models.Entry{models.NewErrorEntry(root, visitor.MaxDepth(), err)}
	}

	return entries
}
