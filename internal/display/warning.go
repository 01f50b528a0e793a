package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("\x1b[33m")
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	b.WriteString("\x1b[0m")

	fmt.Fprint(out, b.String())
}

// WarnExcludedTunes creates a warning for tune files without a numeric
// "X:" reference field.
func WarnExcludedTunes(files []string) Warning {
	noun := "tune file is"
	if len(files) != 1 {
		noun = "tune files are"
	}
	return Warning{
		Title:      fmt.Sprintf("%d %s missing a reference number", len(files), noun),
		Message:    "These files are left out of the tune catalog",
		Files:      files,
		Suggestion: "Start each tune with a numbered reference field, e.g. \"X:1\"",
	}
}

// WarnUnreadable creates a warning for files that could not be read.
func WarnUnreadable(files []string) Warning {
	return Warning{
		Title: "Some files could not be read",
		Files: files,
	}
}
