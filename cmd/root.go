package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/chargesim/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "chargesim",
	Short: "Smart EV charging simulator",
	Long: "chargesim synthesizes a day of grid load and solar production and runs\n" +
		"a rule-based charging controller against it, minute by minute.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file. When the flag was left at its
// default and no such file exists, the built-in defaults are used.
func loadConfig() (*config.Config, error) {
	if cfgPath == "config.yaml" {
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	return config.Load(cfgPath)
}
