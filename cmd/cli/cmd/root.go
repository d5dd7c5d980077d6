// Package cmd provides the CLI commands for taxcurve.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taxcurve/internal/config"
	"taxcurve/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "taxcurve",
	Short: "Progressive income-tax and inflation calculations",
	Long: `taxcurve evaluates a five-zone progressive income-tax tariff and
converts amounts between years with compounding inflation.

Examples:
  taxcurve tax --year 2023 --income 50000
  taxcurve adjust 100 --from 2003 --to 2005
  taxcurve curve --year 2023 --quantity marginal --format csv`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.taxcurve.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(taxCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(curveCmd)
	rootCmd.AddCommand(yearsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("taxcurve version 0.1.0")
	},
}
