package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects on the board",
	Long: `List projects on the board in board order.

Both lists are shown by default. Use --status to limit the output to one
list.

Examples:
  boardctl list
  boardctl list --status=active
  boardctl list --status=finished`,
	RunE: runList,
}

var listStatus string

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (active or finished)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := statusFilter(listStatus)
	if err != nil {
		return err
	}

	board, err := apiClient().Board(cmd.Context(), filter)
	if err != nil {
		return err
	}

	if len(board) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	printBoard(os.Stdout, board)
	return nil
}
