// Package scan turns folders of downloaded PDFs into line-addressed
// match reports and turbine-coordinate sightings.
package scan

import "github.com/mlodde/viascan"

// DefaultPatterns returns the built-in pattern set: coordinates in the
// common textual formats, Italian cadastral references, turbine
// manufacturers, and technical terms. All case-insensitive. The order
// is fixed for reproducibility; matching is any-of, so order never
// changes which lines match.
func DefaultPatterns() []viascan.Pattern {
	return []viascan.Pattern{
		viascan.MustPattern("keyword",
			`(?i)(WGS84|coordinate)`),
		viascan.MustPattern("decimal-degrees",
			`(?i)\b[-+]?[0-9]*\.?[0-9]+°?\s*[NS]?\s*,?\s*[-+]?[0-9]*\.?[0-9]+°?\s*[EW]?\b`),
		viascan.MustPattern("degrees-minutes-seconds",
			`(?i)\b\d{1,3}°\s*\d{1,2}'\s*\d{1,2}(\.\d+)?"?\s*[NSEW]\b`),
		viascan.MustPattern("degrees-decimal-minutes",
			`(?i)\b\d{1,3}°?\s*\d{1,2}\.\d+['′]?\s*[NSEW]?\b`),
		viascan.MustPattern("utm",
			`(?i)\b\d{1,2}[NS]\s*\d{6,7}(\.\d+)?\s*\d{6,7}(\.\d+)?\b`),
		viascan.MustPattern("cadastral",
			`(?i)\b(foglio|particella|mappale)\s*n?\.*\s*\d+\b`),
		viascan.MustPattern("cadastral-plural",
			`(?i)\bmappali\s*n?\.*\s*\d+(?:\s*,\s*\d+)*\b`),
		viascan.MustPattern("manufacturer",
			`(?i)(nordex|vestas|siemens)`),
		viascan.MustPattern("technical-term",
			`(?i)\baltezza\b|\baltitudine\b|\bhub\b|\btip\b|\blama\b|\bblade\b|\brotore\b|\bdiametro\b`),
	}
}
