package main

import (
	"fmt"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/crawl"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	st := crawl.SearchProjects
	if c.Documents {
		st = crawl.SearchDocuments
	}

	projects, err := deps.Discoverer.DiscoverProjects(deps.Ctx, c.Keyword, st)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", viascan.ErrorMessage(err))
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Keyword)
		return nil
	}

	for _, p := range projects {
		if err := deps.Projects.CreateProject(deps.Ctx, p); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", viascan.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", p.ID, p.Status, p.Title)
	}

	fmt.Fprintf(deps.Stdout, "Catalogued %d projects for %q.\n", len(projects), c.Keyword)
	return nil
}
