package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show project details",
	Long: `Show full details for a single project.

Examples:
  boardctl show 2f6c9a0e-6c1f-4ad5-9d0a-1f1a2b3c4d5e`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	p, err := apiClient().GetProject(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", p.ID, p.Title)
	fmt.Printf("Status: %s\n", p.Status)
	fmt.Printf("People: %d\n", p.People)
	if p.Description != "" {
		fmt.Println()
		fmt.Println(p.Description)
	}
	return nil
}
