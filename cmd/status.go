package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timecard/tracker"
)

var statusDBPath string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running work session, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(statusDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		service := tracker.NewService(store)
		status, err := service.Status(time.Now())
		if err != nil {
			if errors.Is(err, tracker.ErrNoActiveSession) {
				fmt.Println("No work session is running.")
				return nil
			}
			return err
		}

		fmt.Printf("Working on %q since %s (%s elapsed)\n",
			status.Project,
			status.Start.Format("15:04"),
			formatElapsed(status.Elapsed),
		)
		if status.Notes != "" {
			fmt.Printf("Notes: %s\n", status.Notes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusDBPath, "db", "", "Path to local SQLite database (default from config)")
}
