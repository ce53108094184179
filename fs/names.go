// Package fs provides filesystem naming helpers for downloaded
// documents.
package fs

import "strings"

// filenameReplacer maps characters that are illegal in filesystem names
// on at least one supported platform to an underscore.
var filenameReplacer = strings.NewReplacer(
	`\`, "_",
	`/`, "_",
	`*`, "_",
	`?`, "_",
	`:`, "_",
	`"`, "_",
	`<`, "_",
	`>`, "_",
	`|`, "_",
)

// SanitizeFilename derives a filesystem-safe name from a display name.
// The mapping is deterministic: the same input always yields the same
// output, which is what makes the existence check a reliable dedup key.
func SanitizeFilename(name string) string {
	return filenameReplacer.Replace(name)
}
