package main

import (
	"fmt"

	"github.com/mlodde/viascan"
)

// Run executes the include command.
func (c *IncludeCmd) Run(deps *Dependencies) error {
	return setInclude(deps, c.ID, true)
}

// Run executes the exclude command.
func (c *ExcludeCmd) Run(deps *Dependencies) error {
	return setInclude(deps, c.ID, false)
}

func setInclude(deps *Dependencies, id string, include bool) error {
	project, err := deps.Projects.UpdateProject(deps.Ctx, id, viascan.ProjectUpdate{Include: &include})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", viascan.ErrorMessage(err))
		return err
	}

	verb := "Included"
	if !include {
		verb = "Excluded"
	}
	fmt.Fprintf(deps.Stdout, "%s project %s (%s)\n", verb, project.ID, project.Title)
	return nil
}
