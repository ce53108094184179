package main

import (
	"fmt"

	"github.com/mlodde/viascan"
)

// Run executes the projects command.
func (c *ProjectsCmd) Run(deps *Dependencies) error {
	filter := viascan.ProjectFilter{}
	if c.Included {
		include := true
		filter.Include = &include
	}
	if c.Excluded {
		include := false
		filter.Include = &include
	}

	projects, err := deps.Projects.FindProjects(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", viascan.ErrorMessage(err))
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(deps.Stdout, "No projects found. Use 'viascan search' to discover some.")
		return nil
	}

	for _, p := range projects {
		mark := " "
		if p.Include {
			mark = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s  %s\n", mark, p.ID, p.Status, p.Title)
	}

	return nil
}
