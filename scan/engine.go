package scan

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mlodde/viascan"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the file-level worker count. Scanning is
// CPU-bound on text extraction; a small pool keeps memory use flat.
const DefaultConcurrency = 4

// Engine scans folders of PDFs against an ordered pattern set.
type Engine struct {
	Extractor viascan.TextExtractor
	Patterns  []viascan.Pattern
	Logger    *slog.Logger

	// Concurrency bounds the number of files scanned in parallel.
	// Defaults to DefaultConcurrency when zero.
	Concurrency int
}

// Scan recursively enumerates every .pdf under root (case-insensitive
// extension, lexicographic path order) and returns one MatchRecord per
// line that matches at least one pattern. Files are scanned in
// parallel, but results are assembled by enumeration index, so output
// order is deterministic: file enumeration order, then page, then line.
//
// A file that cannot be read or parsed is logged and contributes zero
// matches; it never aborts the rest of the scan. The progress callback,
// when set, fires once per completed file.
func (e *Engine) Scan(ctx context.Context, root string, progress viascan.ScanProgressFunc) ([]viascan.MatchRecord, error) {
	files, err := ListPDFs(root)
	if err != nil {
		return nil, err
	}

	perFile := make([][]viascan.MatchRecord, len(files))

	var mu sync.Mutex
	completed := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency())

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			records, err := e.scanFile(path)
			if err != nil {
				e.logger().Error("scan failed, skipping file",
					"path", path,
					"error", err,
				)
			}
			perFile[i] = records

			mu.Lock()
			completed++
			done := completed
			mu.Unlock()

			if progress != nil {
				progress(viascan.ScanProgress{
					Path:      path,
					Completed: done,
					Total:     len(files),
					Matches:   len(records),
					Err:       err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []viascan.MatchRecord
	for _, records := range perFile {
		all = append(all, records...)
	}
	return all, nil
}

// scanFile tests every line of every page against the pattern set.
// At most one record is emitted per line, no matter how many patterns
// match it.
func (e *Engine) scanFile(path string) ([]viascan.MatchRecord, error) {
	pages, err := e.Extractor.PageLines(path)
	if err != nil {
		return nil, err
	}

	var records []viascan.MatchRecord
	for pageIdx, lines := range pages {
		for lineIdx, line := range lines {
			if !e.anyMatch(line) {
				continue
			}
			records = append(records, viascan.MatchRecord{
				SourceFile:  path,
				PageNumber:  pageIdx + 1,
				LineNumber:  lineIdx + 1,
				MatchedText: line,
			})
		}
	}
	return records, nil
}

// anyMatch implements the OR semantics over the ordered pattern set.
func (e *Engine) anyMatch(line string) bool {
	for _, p := range e.Patterns {
		if p.Re.MatchString(line) {
			return true
		}
	}
	return false
}

func (e *Engine) concurrency() int {
	if e.Concurrency > 0 {
		return e.Concurrency
	}
	return DefaultConcurrency
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// ListPDFs returns every .pdf file under root, recursively, in
// lexicographic path order so results are reproducible across runs on
// an unchanged folder.
func ListPDFs(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
