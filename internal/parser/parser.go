// Package parser extracts catalog metadata from source file contents.
//
// Each supported format has a small line grammar:
//
//	ABC tune:  title     := "T:" rest-of-line
//	           reference := "X:" [ \t]* digit+
//	Markdown:  title     := "#" (space | tab) rest-of-line   (outside code blocks)
//
// Markers must start a line and are case-sensitive. Parsers work on bytes
// already read from disk so they can be tested without file I/O.
package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents the format of a source file
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatABC represents an ABC notation (.abc) tune file
	FormatABC
	// FormatMarkdown represents a Markdown (.md) documentation file
	FormatMarkdown
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatABC:
		return "abc"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// Parser is the interface that all title parsers implement
type Parser interface {
	// Title returns the title declared in content, and whether one was found
	Title(content []byte) (string, bool)
	// FallbackTitle derives a title from the file name when content has none
	FallbackTitle(filename string) string
}

// NewParser creates a new parser instance for the specified format
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatABC:
		return NewABCParser(), nil
	case FormatMarkdown:
		return NewMarkdownParser(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// stripExt returns the base name of filename without its extension.
func stripExt(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
