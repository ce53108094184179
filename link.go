package viascan

// Portal path substrings that identify link kinds on detail and search
// pages.
const (
	InfoPathFragment          = "/it-IT/Oggetti/Info/"
	DocumentationPathFragment = "/it-IT/Oggetti/Documentazione/"
)

// DocumentLink is a direct downloadable-file reference extracted from a
// documents table. Uniqueness is not enforced at this layer; the
// filesystem existence check deduplicates at download time.
type DocumentLink struct {
	// DownloadURL is the absolute URL of the file.
	DownloadURL string

	// DisplayName is the human-readable file name from the table. It is
	// sanitized before being used as a filesystem name.
	DisplayName string
}

// PageCursor describes the position within a paginated resource. Total
// is derived once from the first fetched page and does not change
// mid-walk.
type PageCursor struct {
	Current int // 1-based
	Total   int // >= 1
}
