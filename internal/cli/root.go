// regval - Power regulators configuration validator

// Package cli provides the Cobra-based command line interface for regval.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "regval",
	Short: "power regulators configuration validator",
	Long: `regval validates power regulators configuration files.

A configuration file describes the chassis, voltage regulator devices, and
rails of a system, plus a library of named rules built from actions. regval
checks a file against the regulators JSON schema and then runs the semantic
checks the schema cannot express: identifier uniqueness, rule call-graph
cycle detection, reference resolution, and i2c byte-array arity.`,
	Example: `  # Validate one configuration file
  regval validate -s config.schema.json -c config.json

  # Validate every configuration produced by a build
  regval validate -s config.schema.json -c rainier.json -c everest.json`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", ".regval.json", "Path to regval config file")
}
