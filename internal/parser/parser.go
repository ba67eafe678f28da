package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-logr/logr"
)

// blockSelector lists elements that end a line of visible text
const blockSelector = "p, div, li, tr, pre, blockquote, section, article, header, footer, h1, h2, h3, h4, h5, h6"

// Parser extracts visible text from HTML documents
type Parser struct {
	log logr.Logger
}

// New creates a new Parser
func New(log logr.Logger) *Parser {
	return &Parser{
		log: log.WithName("parser"),
	}
}

// ExtractText returns the visible text of an HTML document, one block element per line
func (p *Parser) ExtractText(reader io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	// Content that is never rendered as text
	doc.Find("script, style, noscript, template, head").Remove()

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).AfterHtml("\n")

	// Prefer the main content over page chrome
	for _, selector := range []string{"main", "article", "body"} {
		content := doc.Find(selector)
		if content.Length() == 0 {
			continue
		}
		text := normalize(content.Text())
		if text != "" {
			p.log.V(1).Info("extracted text", "selector", selector, "chars", len(text))
			return text, nil
		}
	}

	p.log.V(1).Info("document has no visible text")
	return "", nil
}

// normalize trims every line and drops the blank ones
func normalize(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
