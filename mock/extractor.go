package mock

import "github.com/mlodde/viascan"

var _ viascan.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of viascan.TextExtractor.
type TextExtractor struct {
	PageLinesFn func(path string) ([][]string, error)
}

func (e *TextExtractor) PageLines(path string) ([][]string, error) {
	return e.PageLinesFn(path)
}
