package mock

import "github.com/fwojciec/sitechat"

var _ sitechat.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of sitechat.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
