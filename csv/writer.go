// Package csv serializes scan match reports as comma-separated values.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mlodde/viascan"
)

// Ensure ReportWriter implements viascan.ReportWriter at compile time.
var _ viascan.ReportWriter = (*ReportWriter)(nil)

// header is the fixed report column set. Page and Line are 1-based.
var header = []string{"PDF_File", "Page", "Line", "Matched_Text"}

// ReportWriter writes match records as a CSV document with a header
// row. Records are written in input order.
type ReportWriter struct{}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteReport writes the header followed by one row per record. An
// empty record set still produces the header so downstream tooling can
// tell "scanned, nothing found" from "no report".
func (rw *ReportWriter) WriteReport(w io.Writer, records []viascan.MatchRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return viascan.Errorf(viascan.EINTERNAL, "write report header: %v", err)
	}

	for _, r := range records {
		row := []string{
			r.SourceFile,
			strconv.Itoa(r.PageNumber),
			strconv.Itoa(r.LineNumber),
			r.MatchedText,
		}
		if err := cw.Write(row); err != nil {
			return viascan.Errorf(viascan.EINTERNAL, "write report row: %v", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return viascan.Errorf(viascan.EINTERNAL, "flush report: %v", err)
	}
	return nil
}
