package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags that apply to all commands
	inputPath  string
	format     string
	outputPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "keyset",
	Short: "Keyset CLI - query ordered keyed collections",
	Long: `Keyset runs declarative queries against collections of members loaded
from a YAML or JSON file: filter, sort, exclude, search, paginate, and group.

Members are mappings; a member without an "id" entry is assigned a generated
one so results stay addressable.

Examples:
  # Filter and sort
  keyset query -i tasks.yaml --filter status=active --sort priority

  # Full descriptor from a file
  keyset query -i tasks.yaml --descriptor query.yaml

  # Group by a field
  keyset group -i tasks.yaml --field project`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Environment defaults: KEYSET_INPUT, KEYSET_FORMAT, KEYSET_OUTPUT
		viper.SetEnvPrefix("keyset")
		viper.AutomaticEnv()
		if !cmd.Flags().Changed("input") && viper.GetString("input") != "" {
			inputPath = viper.GetString("input")
		}
		if !cmd.Flags().Changed("format") && viper.GetString("format") != "" {
			format = viper.GetString("format")
		}
		if !cmd.Flags().Changed("output") && viper.GetString("output") != "" {
			outputPath = viper.GetString("output")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "path to member file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "json", "output format: json|yaml")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "write results to file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed output")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(groupCmd)
}

// fail prints an error to stderr and returns it for cobra to propagate.
func fail(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	return err
}
