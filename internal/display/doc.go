// Package display turns classified entries into text for the terminal.
//
// It centralizes all user-facing formatting for treewalk: entry names, size
// and type labels, indentation, colors and the structured output formats.
//
// # Entry Lines
//
// Every entry renders to one line:
//
//	(text) notes.txt (1.5 KB)
//	[dir] src
//	[inaccessible] /var/lib/secret
//
// When all entries share a depth the listing is flat; otherwise each line is
// indented by four spaces per depth level:
//
//	lines := display.Lines(entries)
//
// # Sizes and Types
//
// FormatSize uses binary units (B, KB, MB, GB, TB) with one decimal above
// 1023 bytes. ParseSize and ParseSizeRange read the same notation back for
// the --size flag and return errors wrapping ErrInvalidSize or
// ErrInvalidSizeRange. ClassifyExtension maps extensions to labels such as
// image, script, data, code and text; anything else is "unknown".
//
// # Colors
//
// Lister colors directory lines blue, inaccessible entries red and type
// labels cyan using fatih/color. ColorEnabled resolves the auto, always and
// never modes, detecting terminals with go-isatty.
//
// # Formats
//
// Write renders text, JSON (Report), Markdown (nested bullet list) or HTML
// (the Markdown list converted with goldmark).
//
// # Messages
//
// Warning and Summary produce the auxiliary messages printed around a
// listing. All functions accept io.Writer for testability.
package display
