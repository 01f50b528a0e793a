package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownParser_Title(t *testing.T) {
	tests := []struct {
		name      string
		markdown  string
		wantTitle string
		wantFound bool
	}{
		{
			name:      "simple heading",
			markdown:  "# User Guide\n\nSome text.\n",
			wantTitle: "User Guide",
			wantFound: true,
		},
		{
			name:      "first level-1 heading after other content",
			markdown:  "Intro paragraph.\n\n## Overview\n\n# Getting Started\n\n# Later\n",
			wantTitle: "Getting Started",
			wantFound: true,
		},
		{
			name:      "inline markup kept verbatim",
			markdown:  "# The `tunecat` Tool\n",
			wantTitle: "The `tunecat` Tool",
			wantFound: true,
		},
		{
			name:      "level-2 only",
			markdown:  "## Not A Title\n\ntext\n",
			wantFound: false,
		},
		{
			name:      "heading inside fenced code is ignored",
			markdown:  "```sh\n# install\n```\n\n# Install Notes\n",
			wantTitle: "Install Notes",
			wantFound: true,
		},
		{
			name:      "setext heading is not a title",
			markdown:  "Underlined\n==========\n",
			wantFound: false,
		},
		{
			name:      "hash without space is not a heading",
			markdown:  "#hashtag\n",
			wantFound: false,
		},
		{
			name:      "closing hashes kept",
			markdown:  "# C# Tips ##\n",
			wantTitle: "C# Tips ##",
			wantFound: true,
		},
		{
			name:      "indented hash is not a title",
			markdown:  "   # Indented\n",
			wantFound: false,
		},
		{
			name:      "heading line inside an HTML block",
			markdown:  "<div>\n# In HTML\n</div>\n",
			wantTitle: "In HTML",
			wantFound: true,
		},
		{
			name:      "tab after marker and trailing blanks",
			markdown:  "#\tTabbed Title  \r\n",
			wantTitle: "Tabbed Title",
			wantFound: true,
		},
		{
			name:      "heading without text is skipped",
			markdown:  "# \n\n# Real Title\n",
			wantTitle: "Real Title",
			wantFound: true,
		},
		{
			name:      "indented code block is ignored",
			markdown:  "Intro\n\n    # not a title\n\n# Title\n",
			wantTitle: "Title",
			wantFound: true,
		},
		{
			name:      "unclosed fence hides later lines",
			markdown:  "```\n# comment\n",
			wantFound: false,
		},
		{
			name:      "empty document",
			markdown:  "",
			wantFound: false,
		},
	}

	p := NewMarkdownParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, found := p.Title([]byte(tt.markdown))
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantTitle, title)
		})
	}
}

func TestMarkdownParser_FallbackTitle(t *testing.T) {
	p := NewMarkdownParser()
	assert.Equal(t, "Setup Notes", p.FallbackTitle("setup_notes.md"))
	assert.Equal(t, "Readme", p.FallbackTitle("docs/README.md"))
	assert.Equal(t, "Abc Syntax Cheat Sheet", p.FallbackTitle("abc_syntax_cheat_sheet.md"))
}

func TestNewParser(t *testing.T) {
	p, err := NewParser(FormatABC)
	assert.NoError(t, err)
	assert.IsType(t, &ABCParser{}, p)

	p, err = NewParser(FormatMarkdown)
	assert.NoError(t, err)
	assert.IsType(t, &MarkdownParser{}, p)

	_, err = NewParser(FormatUnknown)
	assert.Error(t, err)
}
