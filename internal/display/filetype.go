package display

import "strings"

// UnknownType labels files whose extension is not in the table.
const UnknownType = "unknown"

var extensionTypes = map[string]string{
	// Images
	"png":  "image",
	"jpg":  "image",
	"jpeg": "image",
	"bmp":  "image",
	"gif":  "image",
	"svg":  "image",
	"webp": "image",

	// Scripts
	"sh":   "script",
	"bash": "script",
	"zsh":  "script",
	"bat":  "script",
	"cmd":  "script",
	"ps1":  "script",

	// Data
	"csv":  "data",
	"json": "data",
	"xml":  "data",
	"yaml": "data",
	"yml":  "data",
	"toml": "data",

	// Code
	"go":   "code",
	"java": "code",
	"js":   "code",
	"ts":   "code",
	"py":   "code",
	"rb":   "code",
	"rs":   "code",
	"c":    "code",
	"h":    "code",
	"cpp":  "code",

	// Text
	"txt": "text",
	"md":  "text",
	"log": "text",
}

// ClassifyExtension maps an extension (without the dot) to a type label.
// Matching is case-insensitive.
func ClassifyExtension(ext string) string {
	if label, ok := extensionTypes[strings.ToLower(ext)]; ok {
		return label
	}
	return UnknownType
}
