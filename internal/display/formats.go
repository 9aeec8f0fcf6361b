package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/harrison/treewalk/internal/models"
	"github.com/yuin/goldmark"
)

// Output formats accepted by Write.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatMarkdown, FormatHTML}

// Report is the structured form of a listing.
type Report struct {
	ScanID   string        `json:"scan_id"`
	Root     string        `json:"root"`
	MaxDepth int           `json:"max_depth"`
	Entries  []ReportEntry `json:"entries"`
}

// ReportEntry is one entry in a Report.
type ReportEntry struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	Depth     int    `json:"depth"`
	Size      *int64 `json:"size,omitempty"`
	Extension string `json:"extension,omitempty"`
	Type      string `json:"type,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewReport converts entries into their structured form.
func NewReport(scanID, root string, maxDepth int, entries []models.Entry) Report {
	report := Report{
		ScanID:   scanID,
		Root:     root,
		MaxDepth: maxDepth,
		Entries:  make([]ReportEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		re := ReportEntry{
			Kind:  entry.Kind().String(),
			Name:  entry.BaseName(),
			Path:  entry.Path(),
			Depth: entry.DepthLevel(),
		}
		switch e := entry.(type) {
		case models.FileEntry:
			if size, ok := e.SizeInBytes(); ok {
				re.Size = &size
			}
			re.Extension, _ = e.Extension()
			re.Type = fileTypeLabel(e)
		case models.ErrorEntry:
			re.Error = e.Reason()
		}
		report.Entries = append(report.Entries, re)
	}

	return report
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// markdownEscaper backslash-escapes characters with inline Markdown meaning.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`&`, `\&`,
	`!`, `\!`,
	`#`, `\#`,
	`|`, `\|`,
)

// Markdown renders entries as a nested bullet list, one item per entry.
// Nesting follows the depth levels relative to the shallowest entry.
func Markdown(entries []models.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	base := entries[0].DepthLevel()
	for _, e := range entries {
		if e.DepthLevel() < base {
			base = e.DepthLevel()
		}
	}

	var b strings.Builder
	prevLevel := -1
	for _, e := range entries {
		level := e.DepthLevel() - base
		// A list item can only nest one level below the previous one.
		if level > prevLevel+1 {
			level = prevLevel + 1
		}
		prevLevel = level

		b.WriteString(strings.Repeat("  ", level))
		b.WriteString("- ")
		b.WriteString(markdownEscaper.Replace(EntryName(e)))
		b.WriteString("\n")
	}
	return b.String()
}

// HTML renders the Markdown listing to an HTML fragment.
func HTML(entries []models.Entry) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(entries)), &buf); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}

// WriteOptions configures Write.
type WriteOptions struct {
	Format   string // one of Formats; empty means text
	Color    bool   // colorize the text format
	ScanID   string // identifier of the traversal, reported in JSON
	Root     string
	MaxDepth int
}

// Write renders entries in the configured format.
func Write(w io.Writer, opts WriteOptions, entries []models.Entry) error {
	switch opts.Format {
	case FormatText, "":
		return NewLister(w, opts.Color).Render(entries)
	case FormatJSON:
		return WriteJSON(w, NewReport(opts.ScanID, opts.Root, opts.MaxDepth, entries))
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(entries))
		return err
	case FormatHTML:
		html, err := HTML(entries)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	default:
		return fmt.Errorf("unknown format %q (expected one of: %s)", opts.Format, strings.Join(Formats, ", "))
	}
}
