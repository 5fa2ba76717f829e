package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsamuelsen11/taskboard/internal/domain/project"
)

// printBoard renders one row per project in board order.
func printBoard(w io.Writer, board project.Snapshot) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPEOPLE\tTITLE")
	for _, p := range board {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.ID, p.Status, p.People, p.Title)
	}
	tw.Flush()
}

// statusFilter converts a --status flag value into a board filter. An empty
// value selects both lists.
func statusFilter(raw string) (project.Filter, error) {
	if raw == "" {
		return project.Filter{}, nil
	}
	status, err := project.ParseStatus(raw)
	if err != nil {
		return project.Filter{}, fmt.Errorf("invalid status %q (expected active or finished)", raw)
	}
	return project.Filter{Status: status}, nil
}
