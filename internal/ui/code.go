package ui

import (
	"bytes"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Code is a popover showing a syntax highlighted snippet.
type Code struct {
	Title    string
	Language string
	Source   string

	// highlighted output, keyed by the chroma style it was rendered with
	cached      string
	cachedStyle string
}

// NewCode creates a code popover. Language is a chroma lexer name such as "go";
// unknown languages fall back to plain text.
func NewCode(title, language, source string) *Code {
	return &Code{Title: title, Language: language, Source: strings.TrimRight(source, "\n")}
}

// View implements Content.
func (c *Code) View(st RenderState) string {
	styleName := CurrentTheme().CodeStyle
	if c.cached == "" || c.cachedStyle != styleName {
		c.cached = strings.TrimRight(highlightCode(c.Source, c.Language, styleName), "\n")
		c.cachedStyle = styleName
	}
	if c.Title == "" {
		return frame(c.cached, st)
	}
	return frame(lipgloss.JoinVertical(lipgloss.Left, PopoverTitleStyle.Render(c.Title), c.cached), st)
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language, styleName string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}
