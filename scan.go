package viascan

import (
	"io"
	"regexp"
)

// Pattern is an immutable search-pattern descriptor: the original
// source string plus its compiled form. Patterns are compiled once at
// startup and shared by reference; the scan engine never recompiles
// them per file.
type Pattern struct {
	Name   string
	Source string
	Re     *regexp.Regexp
}

// MustPattern compiles a pattern descriptor or panics. Intended for
// package-level pattern tables built from literals.
func MustPattern(name, source string) Pattern {
	return Pattern{Name: name, Source: source, Re: regexp.MustCompile(source)}
}

// MatchRecord is one line of PDF text that satisfied at least one
// pattern. At most one record is emitted per line regardless of how
// many patterns matched it. Page and Line are 1-based.
type MatchRecord struct {
	SourceFile  string
	PageNumber  int
	LineNumber  int
	MatchedText string
}

// TextExtractor extracts text from a document file, line-addressed per
// page. A page without extractable text yields an empty slice, not an
// error.
type TextExtractor interface {
	// PageLines returns, for each page in order, the page's text split
	// into lines.
	PageLines(path string) ([][]string, error)
}

// ScanProgress reports per-file progress during a scan.
type ScanProgress struct {
	Path      string
	Completed int
	Total     int
	Matches   int
	Err       error
}

// ScanProgressFunc is called after each file is processed. It is an
// observer only: scanning behaves identically with a nil callback.
type ScanProgressFunc func(ScanProgress)

// ReportWriter serializes match records. Records are written in input
// order with no re-ordering and no deduplication.
type ReportWriter interface {
	WriteReport(w io.Writer, records []MatchRecord) error
}
