package catalog

import (
	"path"

	"github.com/harrison/tunecat/internal/parser"
)

// DefaultCategory is assigned to tunes directly under the content root.
const DefaultCategory = "General"

// Kind selects which catalog is built.
type Kind int

const (
	// KindTunes is the ABC tune catalog
	KindTunes Kind = iota
	// KindDocs is the Markdown documentation catalog
	KindDocs
)

// String returns the name used on the command line.
func (k Kind) String() string {
	switch k {
	case KindTunes:
		return "tunes"
	case KindDocs:
		return "docs"
	default:
		return "unknown"
	}
}

// ParseKind maps a command-line name to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "tunes", "abc":
		return KindTunes, true
	case "docs", "md":
		return KindDocs, true
	default:
		return 0, false
	}
}

// Format is the source format catalogued by k.
func (k Kind) Format() parser.Format {
	switch k {
	case KindTunes:
		return parser.FormatABC
	case KindDocs:
		return parser.FormatMarkdown
	default:
		return parser.FormatUnknown
	}
}

// Kinds lists every catalog in generation order.
func Kinds() []Kind {
	return []Kind{KindTunes, KindDocs}
}

// SummaryLabel is the <label> in "Generated <label> with <n> <unit>".
func (k Kind) SummaryLabel() string {
	if k == KindDocs {
		return "docs file list"
	}
	return "file list"
}

// SummaryUnit is the <unit> in "Generated <label> with <n> <unit>".
func (k Kind) SummaryUnit() string {
	if k == KindDocs {
		return "markdown files"
	}
	return "ABC files"
}

// Entry is one catalogued file.
type Entry struct {
	// Name is the display title
	Name string
	// File is the path relative to the content root, "/"-separated
	File string
	// Category is the parent folder name; empty for documents
	Category string
}

// Catalog is an ordered, read-only list of entries of one kind.
type Catalog struct {
	kind    Kind
	entries []Entry
}

// New sorts entries for kind and wraps them in a Catalog. The slice is
// copied; later changes to entries do not affect the catalog.
func New(kind Kind, entries []Entry) *Catalog {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	Sort(kind, sorted)
	return &Catalog{kind: kind, entries: sorted}
}

// Kind returns the catalog kind.
func (c *Catalog) Kind() Kind {
	return c.kind
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the ordered entries.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// CategoryOf derives a tune's category from its "/"-separated path relative
// to the content root: the immediate parent folder, or DefaultCategory at the
// root.
func CategoryOf(relPath string) string {
	dir := path.Dir(relPath)
	if dir == "." || dir == "/" || dir == "" {
		return DefaultCategory
	}
	return path.Base(dir)
}
