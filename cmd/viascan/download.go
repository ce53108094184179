package main

import (
	"fmt"

	"github.com/mlodde/viascan"
	"github.com/mlodde/viascan/crawl"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	var projects []*viascan.Project

	if c.ID != "" {
		project, err := deps.Projects.FindProjectByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'viascan projects' to see the catalog.\n", viascan.ErrorMessage(err))
			return err
		}
		projects = append(projects, project)
	} else {
		include := true
		found, err := deps.Projects.FindProjects(deps.Ctx, viascan.ProjectFilter{Include: &include})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", viascan.ErrorMessage(err))
			return err
		}
		projects = found
	}

	if len(projects) == 0 {
		fmt.Fprintln(deps.Stdout, "No projects marked for download. Use 'viascan include' to select some.")
		return nil
	}

	var total crawl.Result
	for _, p := range projects {
		fmt.Fprintf(deps.Stdout, "Project %s: %s\n", p.ID, p.Title)
		res := deps.Pipeline.DownloadProject(deps.Ctx, p)
		fmt.Fprintf(deps.Stdout, "  %d links: %d downloaded, %d skipped, %d failed\n",
			res.Links, res.Downloaded, res.Skipped, res.Failed)
		total.Add(res)
	}

	fmt.Fprintf(deps.Stdout, "Done. %d projects, %d links: %d downloaded, %d skipped, %d failed\n",
		len(projects), total.Links, total.Downloaded, total.Skipped, total.Failed)
	return nil
}
