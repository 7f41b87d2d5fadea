package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var projectAddDBPath string

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a project name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("project name must not be empty")
		}

		store, _, err := openStore(projectAddDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		added, err := store.AddProject(name)
		if err != nil {
			return err
		}
		if !added {
			fmt.Printf("Project %q is already registered.\n", name)
			return nil
		}

		fmt.Printf("Registered project %q\n", name)
		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectAddCmd)

	projectAddCmd.Flags().StringVar(&projectAddDBPath, "db", "", "Path to local SQLite database (default from config)")
}
