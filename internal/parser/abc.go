package parser

import (
	"bytes"
	"strings"
)

const (
	titleMarker     = "T:"
	referenceMarker = "X:"
)

// ABCParser reads the header fields of ABC notation tunes.
type ABCParser struct{}

func NewABCParser() *ABCParser {
	return &ABCParser{}
}

// Title returns the trimmed remainder of the first line that starts with
// "T:". A present but empty field yields "" with ok set.
func (p *ABCParser) Title(content []byte) (string, bool) {
	var title string
	found := false
	eachLine(content, func(line []byte) bool {
		if rest, ok := bytes.CutPrefix(line, []byte(titleMarker)); ok {
			title = strings.TrimSpace(string(rest))
			found = true
			return false
		}
		return true
	})
	return title, found
}

// FallbackTitle is the file name without its extension.
func (p *ABCParser) FallbackTitle(filename string) string {
	return stripExt(filename)
}

// HasReferenceNumber reports whether content has a line starting with "X:"
// followed by optional blanks and at least one decimal digit. Tunes without
// one are not catalogued.
func HasReferenceNumber(content []byte) bool {
	found := false
	eachLine(content, func(line []byte) bool {
		rest, ok := bytes.CutPrefix(line, []byte(referenceMarker))
		if !ok {
			return true
		}
		rest = bytes.TrimLeft(rest, " \t")
		if len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
			found = true
			return false
		}
		return true
	})
	return found
}

// eachLine calls fn for every "\n"-terminated line of content until fn
// returns false. The line passed to fn excludes the newline.
func eachLine(content []byte, fn func(line []byte) bool) {
	for len(content) > 0 {
		line := content
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			line, content = content[:i], content[i+1:]
		} else {
			content = nil
		}
		if !fn(line) {
			return
		}
	}
}
