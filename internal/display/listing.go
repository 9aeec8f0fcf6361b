package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/treewalk/internal/models"
	"github.com/mattn/go-isatty"
)

const (
	// IndentWidth is the number of spaces per depth level in tree rendering.
	IndentWidth = 4
	// DirPrefix marks directory lines.
	DirPrefix = "[dir]"
	// ErrorPrefix marks inaccessible entries.
	ErrorPrefix = "[inaccessible]"
	// UnknownSize is shown for files whose size could not be read.
	UnknownSize = "unknown"
)

// EntryName renders an entry without indentation:
//
//	(text) notes.txt (1.5 KB)
//	[dir] src
//	[inaccessible] /root/secret
func EntryName(entry models.Entry) string {
	switch e := entry.(type) {
	case models.FileEntry:
		return fmt.Sprintf("(%s) %s (%s)", fileTypeLabel(e), e.BaseName(), fileSizeLabel(e))
	case models.DirectoryEntry:
		return DirPrefix + " " + e.BaseName()
	case models.ErrorEntry:
		return ErrorPrefix + " " + e.Path()
	default:
		return entry.BaseName()
	}
}

func fileTypeLabel(e models.FileEntry) string {
	ext, _ := e.Extension()
	return ClassifyExtension(ext)
}

func fileSizeLabel(e models.FileEntry) string {
	if size, ok := e.SizeInBytes(); ok {
		return FormatSize(size)
	}
	return UnknownSize
}

// SameDepth reports whether all entries share one depth level. An empty
// slice counts as flat.
func SameDepth(entries []models.Entry) bool {
	for _, e := range entries {
		if e.DepthLevel() != entries[0].DepthLevel() {
			return false
		}
	}
	return true
}

func indentation(entry models.Entry, flat bool) string {
	if flat {
		return ""
	}
	return strings.Repeat(" ", entry.DepthLevel()*IndentWidth)
}

// Lines renders one line per entry in order. Entries of mixed depth are
// indented by IndentWidth spaces per level; a single-depth listing is flat.
func Lines(entries []models.Entry) []string {
	return renderLines(entries, EntryName)
}

// renderLines indents the output of name for every entry.
func renderLines(entries []models.Entry, name func(models.Entry) string) []string {
	flat := SameDepth(entries)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, indentation(e, flat)+name(e))
	}
	return lines
}

// ColorEnabled resolves a color mode ("always", "never" or "auto") for the
// given output. Auto enables color only for terminals and honors NO_COLOR.
func ColorEnabled(mode string, out io.Writer) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// listingColors holds the colors used by the text listing.
type listingColors struct {
	dir   *color.Color
	err   *color.Color
	label *color.Color
}

func newListingColors(enabled bool) *listingColors {
	c := &listingColors{
		dir:   color.New(color.FgBlue, color.Bold),
		err:   color.New(color.FgRed),
		label: color.New(color.FgCyan),
	}
	for _, col := range []*color.Color{c.dir, c.err, c.label} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Lister writes the text listing to a writer.
type Lister struct {
	writer io.Writer
	colors *listingColors
}

// NewLister creates a Lister. Colors never change the visible characters,
// only the escape codes around them.
func NewLister(w io.Writer, useColor bool) *Lister {
	return &Lister{
		writer: w,
		colors: newListingColors(useColor),
	}
}

// Render prints every entry on its own line.
func (l *Lister) Render(entries []models.Entry) error {
	var b strings.Builder
	for _, line := range renderLines(entries, l.colorize) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	_, err := io.WriteString(l.writer, b.String())
	return err
}

func (l *Lister) colorize(entry models.Entry) string {
	switch e := entry.(type) {
	case models.FileEntry:
		return fmt.Sprintf("(%s) %s (%s)", l.colors.label.Sprint(fileTypeLabel(e)), e.BaseName(), fileSizeLabel(e))
	case models.DirectoryEntry:
		return l.colors.dir.Sprint(EntryName(e))
	case models.ErrorEntry:
		return l.colors.err.Sprint(EntryName(e))
	default:
		return EntryName(entry)
	}
}
