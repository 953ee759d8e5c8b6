package cmd

import (
	"errors"
	"fmt"
	"os"

	cfgpkg "github.com/grivg/grivg-cli/internal/config"
	"github.com/grivg/grivg-cli/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile     string
	flagDataDir string
	debug       bool

	// Loaded configuration
	cfg *cfgpkg.Settings
)

var rootCmd = &cobra.Command{
	Use:   "grivg",
	Short: "grivg: explore gender representation in video games (2012-2022)",
	Long: `grivg loads the games, characters, and sexualization datasets,
normalizes them, and reports descriptive statistics on character gender,
protagonists, development teams, and temporal trends.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var nf *dataset.NotFoundError
		var pe *dataset.ProcessingError
		switch {
		case errors.As(err, &nf):
			fmt.Fprintln(os.Stderr, "✗ Error:", nf)
		case errors.As(err, &pe):
			fmt.Fprintln(os.Stderr, "✗ Error:", pe)
			if debug {
				fmt.Fprintln(os.Stderr, pe.Trace())
			}
		default:
			fmt.Fprintln(os.Stderr, "✗ Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.grivg/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the source csv files (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output (full traces on processing errors)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Settings{}
	}
	cfg = c
	if rootCmd.PersistentFlags().Changed("data-dir") && flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
}

// loadBundle returns the process-wide normalized tables, loading them on
// first use. All commands read through this; none of them mutate the result.
func loadBundle() (*dataset.Bundle, error) {
	l, err := dataset.NewLoader(cfg)
	if err != nil {
		return nil, err
	}
	return dataset.LoadCached(l)
}
