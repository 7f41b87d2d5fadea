package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectRemoveDBPath string

var projectRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Unregister a project name",
	Long: `Remove a project from the registry.

Existing entries keep their project label; the registry only drives selection
for new work sessions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(projectRemoveDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.RemoveProject(args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("project %q is not registered", args[0])
		}

		fmt.Printf("Removed project %q\n", args[0])
		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectRemoveCmd)

	projectRemoveCmd.Flags().StringVar(&projectRemoveDBPath, "db", "", "Path to local SQLite database (default from config)")
}
