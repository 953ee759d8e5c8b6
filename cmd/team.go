package cmd

import (
	"fmt"

	"github.com/grivg/grivg-cli/internal/report"
	"github.com/grivg/grivg-cli/internal/stats"
	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Development-team composition and its relation to the cast",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBundle()
		if err != nil {
			return err
		}
		fmt.Print(report.Team(stats.Team(b.Games)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(teamCmd)
}
