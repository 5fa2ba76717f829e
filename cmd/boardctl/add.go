package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new project",
	Long: `Add a new project to the board.

New projects always start on the active list. The server assigns the id
and prints it together with the title on success.

Examples:
  boardctl add "Website relaunch" -d "Move the docs site to the new CMS"
  boardctl add "Website relaunch" -d "Move the docs site to the new CMS" -n 3`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addDescription string
	addPeople      int
)

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "project description")
	addCmd.Flags().IntVarP(&addPeople, "people", "n", 1, "number of people on the project (1-5)")
	addCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := args[0]

	created, err := apiClient().CreateProject(cmd.Context(), title, addDescription, addPeople)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", created.ID, created.Title)
	return nil
}
