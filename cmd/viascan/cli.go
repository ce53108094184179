package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     viascan.Config
	Logger     *slog.Logger
	Projects   viascan.ProjectService
	Documents  viascan.DocumentService
	Discoverer *crawl.Discoverer
	Pipeline   *crawl.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search   SearchCmd   `cmd:"" help:"Search the portal and add results to the catalog"`
	Projects ProjectsCmd `cmd:"" help:"List catalogued projects"`
	Include  IncludeCmd  `cmd:"" help:"Mark a project for download"`
	Exclude  ExcludeCmd  `cmd:"" help:"Exclude a project from download"`
	Download DownloadCmd `cmd:"" help:"Download documents of included projects"`
	Scan     ScanCmd     `cmd:"" help:"Scan downloaded PDFs and write a match report"`
	Turbines TurbinesCmd `cmd:"" help:"Extract turbine coordinates and export KML"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Keyword   string `arg:"" help:"Search keyword"`
	Documents bool   `short:"d" help:"Search documents instead of procedures"`
}

// ProjectsCmd is the "projects" subcommand.
type ProjectsCmd struct {
	Included bool `help:"Show only projects marked for download"`
	Excluded bool `help:"Show only excluded projects"`
}

// IncludeCmd is the "include" subcommand.
type IncludeCmd struct {
	ID string `arg:"" help:"Portal project ID"`
}

// ExcludeCmd is the "exclude" subcommand.
type ExcludeCmd struct {
	ID string `arg:"" help:"Portal project ID"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	ID string `arg:"" optional:"" help:"Portal project ID (defaults to every included project)"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Dir         string `arg:"" optional:"" help:"Folder of PDFs to scan (defaults to the download root)"`
	Out         string `short:"o" help:"Report path (defaults to <dir>/<folder>_scan_results.csv)"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent file limit"`
	Quiet       bool   `short:"q" help:"Suppress the progress bar"`
}

// TurbinesCmd is the "turbines" subcommand.
type TurbinesCmd struct {
	Dir  string `arg:"" optional:"" help:"Folder of PDFs to scan (defaults to the download root)"`
	Out  string `short:"o" help:"KML path (defaults to <dir>/turbine.kml)"`
	Name string `help:"Document name inside the KML" default:"Turbine eoliche"`
}
