package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timecard/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  timecard config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use; showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("database.path: %s\n", cfg.Database.Path)
		fmt.Printf("summary.window_days: %d\n", cfg.Summary.WindowDays)
		fmt.Printf("projects.defaults: %s\n", strings.Join(cfg.Projects.Defaults, ", "))
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
