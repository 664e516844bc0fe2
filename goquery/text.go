package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitechat"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements sitechat.TextExtractor at compile time.
var _ sitechat.TextExtractor = (*TextExtractor)(nil)

// invisibleSelector matches elements whose text is never rendered.
const invisibleSelector = "script, style, noscript, template"

// TextExtractor extracts the visible text of an HTML page.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns every visible text node of the page, whitespace
// collapsed, joined by single spaces. Adjacent elements never run together:
// "<p>a</p><p>b</p>" yields "a b".
func (e *TextExtractor) ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", sitechat.Errorf(sitechat.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(invisibleSelector).Remove()

	var words []string
	for _, n := range doc.Nodes {
		words = appendWords(words, n)
	}

	return strings.Join(words, " "), nil
}

func appendWords(words []string, n *html.Node) []string {
	if n.Type == html.TextNode {
		return append(words, strings.Fields(n.Data)...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		words = appendWords(words, c)
	}
	return words
}
