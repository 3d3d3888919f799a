package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parser wraps goldmark for markdown inspection.
type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	return &Parser{md: goldmark.New()}
}

// HasLeadingHeading reports whether the document opens with a heading.
// Leading blank lines do not count against it.
func (p *Parser) HasLeadingHeading(content []byte) bool {
	doc := p.md.Parser().Parse(text.NewReader(content))
	_, ok := doc.FirstChild().(*ast.Heading)
	return ok
}

// PrependHeading returns content with "# title" inserted as the first line,
// separated from the original content by a blank line.
func PrependHeading(content []byte, title string) []byte {
	var b bytes.Buffer
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.Write(content)
	return b.Bytes()
}
