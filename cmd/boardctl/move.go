package main

import (
	"fmt"

	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <id> <status>",
	Short: "Move a project to another list",
	Long: `Move a project to the given board list.

Moving a project to the list it is already on, or moving an id that is
not on the board, leaves the board unchanged and still succeeds.

Examples:
  boardctl move 2f6c9a0e-6c1f-4ad5-9d0a-1f1a2b3c4d5e finished
  boardctl move 2f6c9a0e-6c1f-4ad5-9d0a-1f1a2b3c4d5e active`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	id := args[0]

	status, err := project.ParseStatus(args[1])
	if err != nil {
		return fmt.Errorf("invalid status %q (expected active or finished)", args[1])
	}

	if err := apiClient().MoveProject(cmd.Context(), id, status); err != nil {
		return err
	}

	fmt.Printf("%s moved to %s.\n", id, status)
	return nil
}
