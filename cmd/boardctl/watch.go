package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the board for changes",
	Long: `Watch the board over a live stream.

The current board is printed on connect and again after every change,
with a blank line between prints. The connection stays open until
interrupted with Ctrl-C.

Examples:
  boardctl watch
  boardctl watch --status=active`,
	RunE: runWatch,
}

var watchStatus string

func init() {
	watchCmd.Flags().StringVar(&watchStatus, "status", "", "filter by status (active or finished)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	filter, err := statusFilter(watchStatus)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stream, err := apiClient().Stream(ctx, filter)
	if err != nil {
		return err
	}
	defer stream.Close()

	// Closing the connection is what unblocks the read loop below.
	go func() {
		<-ctx.Done()
		stream.Close()
	}()

	for {
		board, err := stream.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		printBoard(os.Stdout, board)
		fmt.Println()
	}
}
