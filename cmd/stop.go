package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timecard/tracker"
)

var stopDBPath string

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running work session and record the entry",
	Example: `
  # Stop the running session
  timecard stop
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(stopDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		service := tracker.NewService(store)
		entry, err := service.Stop(time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s on %q\n", formatElapsed(entry.Duration()), entry.Project)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)

	stopCmd.Flags().StringVar(&stopDBPath, "db", "", "Path to local SQLite database (default from config)")
}
