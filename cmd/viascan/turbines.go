package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/kml"
	"github.com/mlodde/viascan/pdf"
	"github.com/mlodde/viascan/scan"
)

// Run executes the turbines command.
func (c *TurbinesCmd) Run(deps *Dependencies) error {
	dir := c.Dir
	if dir == "" {
		dir = deps.Config.DownloadDir
	}

	scanner := &scan.TurbineScanner{
		Extractor: pdf.NewExtractor(),
		Logger:    deps.Logger,
	}

	sightings, err := scanner.Scan(deps.Ctx, dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", viascan.ErrorMessage(err))
		return err
	}

	if len(sightings) == 0 {
		fmt.Fprintln(deps.Stdout, "No turbine coordinates found.")
		return nil
	}

	out := c.Out
	if out == "" {
		out = filepath.Join(dir, "turbine.kml")
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot create KML: %v\n", err)
		return err
	}
	defer f.Close()

	if err := kml.NewWriter().Write(f, c.Name, sightings); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", viascan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d turbine placemarks written to %s\n", len(sightings), out)
	return nil
}
