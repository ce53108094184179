// Package pdf extracts line-addressed text from PDF files using
// github.com/ledongthuc/pdf. Extraction is linear per page; no
// structural parsing beyond that.
package pdf

import (
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/mlodde/viascan"
)

// Ensure Extractor implements viascan.TextExtractor at compile time.
var _ viascan.TextExtractor = (*Extractor)(nil)

// Extractor reads PDF text page by page, splitting each page into
// visual rows.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// PageLines returns each page's text as a slice of lines, top to
// bottom. A page without extractable text yields an empty slice. Any
// parse failure, including panics inside the PDF parser on corrupt
// input, is returned as an error so the caller can isolate the file.
func (e *Extractor) PageLines(path string) (lines [][]string, err error) {
	// The parser panics on some malformed files; a corrupt PDF must be
	// an isolated per-file failure, not a crash.
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = viascan.Errorf(viascan.EINTERNAL, "parse %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, viascan.Errorf(viascan.EINTERNAL, "open %s: %v", path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	lines = make([][]string, 0, total)

	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			lines = append(lines, nil)
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// Absence of extractable text is an empty page, not an error.
			lines = append(lines, nil)
			continue
		}

		pageLines := make([]string, 0, len(rows))
		for _, row := range rows {
			var b strings.Builder
			for _, text := range row.Content {
				b.WriteString(text.S)
			}
			if line := strings.TrimSpace(b.String()); line != "" {
				pageLines = append(pageLines, line)
			}
		}
		lines = append(lines, pageLines)
	}

	return lines, nil
}
