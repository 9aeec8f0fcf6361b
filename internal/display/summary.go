package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harrison/treewalk/internal/models"
)

// Summary counts the entries of a listing by kind.
type Summary struct {
	Files        int
	Directories  int
	Inaccessible int
}

// Summarize counts entries by kind.
func Summarize(entries []models.Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Kind() {
		case models.KindFile:
			s.Files++
		case models.KindDirectory:
			s.Directories++
		case models.KindError:
			s.Inaccessible++
		}
	}
	return s
}

// Total is the number of listed entries.
func (s Summary) Total() int {
	return s.Files + s.Directories + s.Inaccessible
}

// Display writes "✓ Listed N entries (M inaccessible)" with a green check
// mark when useColor is set.
func (s Summary) Display(out io.Writer, useColor bool) {
	check := color.New(color.FgGreen)
	if useColor {
		check.EnableColor()
	} else {
		check.DisableColor()
	}
	fmt.Fprintf(out, "%s Listed %d entries (%d inaccessible)\n", check.Sprint("✓"), s.Total(), s.Inaccessible)
}
