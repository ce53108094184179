package viascan

import (
	"context"
	"regexp"
	"time"
)

// Project represents a procedure found on the portal. The ID is the
// portal's own numeric identifier, extracted from the detail URL.
type Project struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Proponent string    `json:"proponent"`
	Status    string    `json:"status"`
	DetailURL string    `json:"detailUrl"`
	DocURL    string    `json:"docUrl"`
	Include   bool      `json:"include"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the project contains invalid fields.
func (p *Project) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "project ID required")
	}
	if p.DetailURL == "" {
		return Errorf(EINVALID, "project detail URL required")
	}
	return nil
}

var infoIDRe = regexp.MustCompile(`/Info/(\d+)`)

// UnknownProjectID is used when a detail URL does not carry a numeric
// project identifier.
const UnknownProjectID = "UnknownProject"

// ProjectIDFromURL extracts the portal project ID from a detail URL.
// Example: /it-IT/Oggetti/Info/10217 -> "10217".
func ProjectIDFromURL(detailURL string) string {
	if m := infoIDRe.FindStringSubmatch(detailURL); m != nil {
		return m[1]
	}
	return UnknownProjectID
}

// ProjectService manages the catalog of discovered projects. The catalog
// replaces a hand-edited inclusion list: discovery populates it, the
// user toggles Include, and the download step processes included
// projects only.
type ProjectService interface {
	// CreateProject adds a project to the catalog. Re-discovering an
	// existing project updates its metadata and preserves its Include
	// flag.
	CreateProject(ctx context.Context, project *Project) error

	// FindProjectByID retrieves a project by portal ID.
	// Returns ENOTFOUND if the project does not exist.
	FindProjectByID(ctx context.Context, id string) (*Project, error)

	// FindProjects retrieves projects matching the filter, most recently
	// discovered first.
	FindProjects(ctx context.Context, filter ProjectFilter) ([]*Project, error)

	// UpdateProject updates an existing project.
	// Returns ENOTFOUND if the project does not exist.
	UpdateProject(ctx context.Context, id string, upd ProjectUpdate) (*Project, error)

	// DeleteProject removes a project and its document ledger entries.
	// Returns ENOTFOUND if the project does not exist.
	DeleteProject(ctx context.Context, id string) error
}

// ProjectFilter represents a filter for FindProjects.
type ProjectFilter struct {
	ID      *string `json:"id"`
	Include *bool   `json:"include"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ProjectUpdate represents fields that can be updated on a project.
type ProjectUpdate struct {
	Title     *string `json:"title"`
	Proponent *string `json:"proponent"`
	Status    *string `json:"status"`
	DocURL    *string `json:"docUrl"`
	Include   *bool   `json:"include"`
}
