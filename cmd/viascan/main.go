package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/crawl"
	vhttp "github.com/mlodde/viascan/http"
	vslog "github.com/mlodde/viascan/slog"
	"github.com/mlodde/viascan/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and log paths. Set before calling Run().
	DBPath  string
	LogPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ProjectService  viascan.ProjectService
	DocumentService viascan.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		LogPath: defaultLogPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("viascan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'viascan --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := configFromEnv()

	logger, closeLog, err := newFileLogger(m.LogPath)
	if err != nil {
		return fmt.Errorf("failed to open log file at %q: %w", m.LogPath, err)
	}
	defer closeLog()

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set VIASCAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ProjectService = sqlite.NewProjectService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)

	fetcher := vslog.NewLoggingFetcher(
		vhttp.NewFetcher(vhttp.WithTimeout(cfg.ListTimeout)), logger)
	downloader := vslog.NewLoggingDownloader(
		vhttp.NewDownloader(vhttp.WithDownloadTimeout(cfg.FileTimeout)), logger)
	limiter := crawl.NewCourtesyLimiter(cfg.Delay)
	pager := &crawl.Pager{Fetcher: fetcher, Limiter: limiter, Logger: logger}

	deps.Config = cfg
	deps.Logger = logger
	deps.Projects = m.ProjectService
	deps.Documents = m.DocumentService
	deps.Discoverer = &crawl.Discoverer{
		Config:  cfg,
		Fetcher: fetcher,
		Pager:   pager,
		Logger:  logger,
	}
	deps.Pipeline = &crawl.Pipeline{
		Config:     cfg,
		Discoverer: deps.Discoverer,
		Downloader: downloader,
		Limiter:    limiter,
		Logger:     logger,
		Documents:  m.DocumentService,
	}

	return kongCtx.Run(deps)
}

// configFromEnv builds the run configuration from the portal defaults
// overridden by VIASCAN_* environment variables.
func configFromEnv() viascan.Config {
	cfg := viascan.DefaultConfig()
	if v := os.Getenv("VIASCAN_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("VIASCAN_DOWNLOAD_DIR"); v != "" {
		cfg.DownloadDir = v
	}
	if v := os.Getenv("VIASCAN_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Delay = d
		}
	}
	return cfg
}

// newFileLogger opens an append-mode JSON log. The console stays free
// for command output; diagnostics go to the file.
func newFileLogger(path string) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(f, nil))
	return logger, f.Close, nil
}

func defaultDBPath() string {
	if path := os.Getenv("VIASCAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "viascan.db"
	}
	dir := filepath.Join(home, ".viascan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "viascan.db")
}

func defaultLogPath() string {
	if path := os.Getenv("VIASCAN_LOG"); path != "" {
		return path
	}
	return "viascan.log"
}
