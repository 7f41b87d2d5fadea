package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectListDBPath string

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(projectListDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		names, err := store.ListProjects()
		if err != nil {
			return err
		}

		if len(names) == 0 {
			fmt.Println("No projects registered.")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectListCmd)

	projectListCmd.Flags().StringVar(&projectListDBPath, "db", "", "Path to local SQLite database (default from config)")
}
