package viascan

import "time"

// Portal defaults. The portal exposes no server-driven backpressure
// signal, so the delay is a fixed courtesy throttle, not a correctness
// mechanism.
const (
	DefaultBaseURL     = "https://va.mite.gov.it"
	DefaultDelay       = 1 * time.Second
	DefaultDownloadDir = "downloads"
	DefaultListTimeout = 10 * time.Second
	DefaultFileTimeout = 20 * time.Second
)

// Config carries the run-wide settings. It is constructed once and
// threaded through component constructors; there is no process-wide
// mutable state.
type Config struct {
	// BaseURL is the portal host all relative links resolve against.
	BaseURL string

	// Delay is the courtesy pause between successive page requests.
	// Applied only between pages, never before the first.
	Delay time.Duration

	// DownloadDir is the root folder for downloaded files. Each project
	// gets a subdirectory named after its portal ID.
	DownloadDir string

	// ListTimeout bounds listing-page requests.
	ListTimeout time.Duration

	// FileTimeout bounds file-download requests.
	FileTimeout time.Duration
}

// DefaultConfig returns a Config populated with the portal defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		Delay:       DefaultDelay,
		DownloadDir: DefaultDownloadDir,
		ListTimeout: DefaultListTimeout,
		FileTimeout: DefaultFileTimeout,
	}
}
