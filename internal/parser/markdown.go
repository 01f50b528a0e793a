package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownParser finds documentation titles in Markdown files.
type MarkdownParser struct {
	markdown goldmark.Markdown
	caser    cases.Caser
}

func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		markdown: goldmark.New(),
		caser:    cases.Title(language.English),
	}
}

const headingMarker = "#"

// Title returns the trimmed remainder of the first line that starts, in
// column 0, with "#" followed by a space or tab. The line is taken verbatim,
// so a closing "#" sequence is kept. Lines inside fenced or indented code
// blocks do not count, and a heading with no text is skipped.
func (p *MarkdownParser) Title(content []byte) (string, bool) {
	code := p.codeSegments(content)

	var title string
	found := false
	offset := 0
	eachLine(content, func(line []byte) bool {
		start := offset
		offset += len(line) + 1

		rest, ok := bytes.CutPrefix(line, []byte(headingMarker))
		if !ok || len(rest) == 0 || (rest[0] != ' ' && rest[0] != '\t') {
			return true
		}
		if inSegments(code, start) {
			return true
		}
		if t := strings.TrimSpace(string(rest)); t != "" {
			title = t
			found = true
			return false
		}
		return true
	})

	return title, found
}

// codeSegments returns the source segments of every code block in content.
func (p *MarkdownParser) codeSegments(content []byte) []text.Segment {
	doc := p.markdown.Parser().Parse(text.NewReader(content))

	var segments []text.Segment
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				segments = append(segments, lines.At(i))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return segments
}

func inSegments(segments []text.Segment, pos int) bool {
	for _, seg := range segments {
		if pos >= seg.Start && pos < seg.Stop {
			return true
		}
	}
	return false
}

// FallbackTitle turns "setup_notes.md" into "Setup Notes".
func (p *MarkdownParser) FallbackTitle(filename string) string {
	name := strings.ReplaceAll(stripExt(filename), "_", " ")
	return p.caser.String(name)
}
