package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mlodde/viascan"
	vcsv "github.com/mlodde/viascan/csv"
	"github.com/mlodde/viascan/pdf"
	"github.com/mlodde/viascan/scan"
	"github.com/schollz/progressbar/v3"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	dir := c.Dir
	if dir == "" {
		dir = deps.Config.DownloadDir
	}

	engine := &scan.Engine{
		Extractor:   pdf.NewExtractor(),
		Patterns:    scan.DefaultPatterns(),
		Logger:      deps.Logger,
		Concurrency: c.Concurrency,
	}

	records, err := engine.Scan(deps.Ctx, dir, c.progress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", viascan.ErrorMessage(err))
		return err
	}

	out := c.Out
	if out == "" {
		out = filepath.Join(dir, filepath.Base(dir)+"_scan_results.csv")
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot create report: %v\n", err)
		return err
	}
	defer f.Close()

	if err := vcsv.NewReportWriter().WriteReport(f, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", viascan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d matches written to %s\n", len(records), out)
	return nil
}

// progress returns a per-file callback driving a terminal progress bar,
// or nil in quiet mode. The engine may report files from concurrent
// workers, so the bar is guarded.
func (c *ScanCmd) progress(deps *Dependencies) viascan.ScanProgressFunc {
	if c.Quiet {
		return nil
	}

	var mu sync.Mutex
	var bar *progressbar.ProgressBar

	return func(p viascan.ScanProgress) {
		mu.Lock()
		defer mu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(p.Total,
				progressbar.OptionSetDescription("Scanning PDFs"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", p.Path, p.Err)
		}
		_ = bar.Set(p.Completed)
	}
}
