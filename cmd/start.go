package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timecard/tracker"
)

var (
	startNotes  string
	startDBPath string
)

var startCmd = &cobra.Command{
	Use:   "start <project>",
	Short: "Start tracking work on a registered project",
	Args:  cobra.ExactArgs(1),
	Example: `
  # Start working on a project
  timecard start "Backend"

  # Start with notes attached to the eventual entry
  timecard start "Backend" --notes "API review"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(startDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		project := args[0]
		service := tracker.NewService(store)
		now := time.Now()

		if err := service.Start(project, startNotes, now); err != nil {
			if errors.Is(err, tracker.ErrUnknownProject) {
				return fmt.Errorf("%w (register it first: timecard project add %q)", err, project)
			}
			return err
		}

		fmt.Printf("Started working on %q at %s\n", project, now.Format("15:04"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVar(&startNotes, "notes", "", "Notes for the eventual entry")
	startCmd.Flags().StringVar(&startDBPath, "db", "", "Path to local SQLite database (default from config)")
}
