package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonIndent matches the nesting of the accessor body.
const jsonIndent = "        "

type moduleHeader struct {
	comment   string
	className string
}

var headers = map[Kind]moduleHeader{
	KindTunes: {"// Auto-generated file list - do not edit manually", "AbcFileList"},
	KindDocs:  {"// Auto-generated docs file list - do not edit manually", "DocsFileList"},
}

// Field order is the key order in the emitted objects.
type tuneRecord struct {
	Name     string `json:"name"`
	File     string `json:"file"`
	Category string `json:"category"`
}

type docRecord struct {
	Name string `json:"name"`
	File string `json:"file"`
}

// Render serializes c as a JavaScript module exposing a single static
// getFiles() accessor. Output depends only on the catalog contents.
func Render(c *Catalog) ([]byte, error) {
	header, ok := headers[c.kind]
	if !ok {
		return nil, fmt.Errorf("unsupported catalog kind: %v", c.kind)
	}

	var records any
	switch c.kind {
	case KindTunes:
		rs := make([]tuneRecord, 0, len(c.entries))
		for _, e := range c.entries {
			rs = append(rs, tuneRecord{Name: e.Name, File: e.File, Category: e.Category})
		}
		records = rs
	case KindDocs:
		rs := make([]docRecord, 0, len(c.entries))
		for _, e := range c.entries {
			rs = append(rs, docRecord{Name: e.Name, File: e.File})
		}
		records = rs
	}

	var list bytes.Buffer
	enc := json.NewEncoder(&list)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode %s catalog: %w", c.kind, err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", header.comment)
	fmt.Fprintf(&buf, "class %s {\n", header.className)
	buf.WriteString("    static getFiles() {\n")
	fmt.Fprintf(&buf, "        return %s;\n", bytes.TrimRight(list.Bytes(), "\n"))
	buf.WriteString("    }\n")
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}
