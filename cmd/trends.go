package cmd

import (
	"fmt"

	"github.com/grivg/grivg-cli/internal/dataset"
	"github.com/grivg/grivg-cli/internal/report"
	"github.com/grivg/grivg-cli/internal/stats"
	"github.com/spf13/cobra"
)

var (
	trFrom int
	trTo   int
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Temporal trends across release years",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBundle()
		if err != nil {
			return err
		}
		games := b.Games
		if trFrom > 0 || trTo > 0 {
			games = dataset.FilterByYearRange(games, "release_year", yearOr(trFrom, 0), yearOr(trTo, 9999))
		}
		fmt.Print(report.Trends(stats.Yearly(games, b.Characters)))
		return nil
	},
}

func init() {
	trendsCmd.Flags().IntVar(&trFrom, "from", 0, "earliest release year")
	trendsCmd.Flags().IntVar(&trTo, "to", 0, "latest release year")
	rootCmd.AddCommand(trendsCmd)
}
