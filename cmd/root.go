/*
Copyright © 2026 timecard contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timecard/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "timecard",
	Short: "Track work intervals per project and review aggregated timesheets.",
	Long: `
**********************************************
*               TIMECARD                     *
**********************************************

This CLI tracks work intervals against named projects in a local SQLite
database. Start and stop a timer, back-fill entries by minutes, import
entries from CSV/Excel, and review or export a date-by-project timesheet.
`,
	Example: `
  # Register a project and start working on it
  timecard project add "Backend"
  timecard start "Backend" --notes "API review"

  # Stop the running session
  timecard stop

  # Back-fill 90 minutes of meetings for a given day
  timecard add --project "Meetings" --minutes 90 --date 2026-03-02

  # Review the last two weeks as a date-by-project grid
  timecard summary

  # Export the grid to Excel
  timecard export --mode summary --output ./timesheet.xlsx

  # Browse the grid in a local web page
  timecard serve
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.timecard.yaml, then ./.timecard.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".timecard" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".timecard")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// A config file is optional; defaults cover every key.
	_ = viper.ReadInConfig()
}
