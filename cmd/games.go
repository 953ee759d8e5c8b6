package cmd

import (
	"fmt"

	"github.com/grivg/grivg-cli/internal/dataset"
	"github.com/grivg/grivg-cli/internal/report"
	"github.com/grivg/grivg-cli/internal/stats"
	"github.com/spf13/cobra"
)

var (
	gmGenre    string
	gmPlatform string
	gmFrom     int
	gmTo       int
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Game-level analysis: parity, protagonists, teams",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBundle()
		if err != nil {
			return err
		}
		games := b.Games
		if gmFrom > 0 || gmTo > 0 {
			games = dataset.FilterByYearRange(games, "release_year", yearOr(gmFrom, 0), yearOr(gmTo, 9999))
		}
		games = dataset.FilterByLabel(games, "genre", gmGenre)
		games = dataset.FilterByLabel(games, "platform", gmPlatform)
		fmt.Print(report.Games(stats.Games(games)))
		return nil
	},
}

func init() {
	gamesCmd.Flags().StringVar(&gmGenre, "genre", "", "restrict to one genre label")
	gamesCmd.Flags().StringVar(&gmPlatform, "platform", "", "restrict to one platform label")
	gamesCmd.Flags().IntVar(&gmFrom, "from", 0, "earliest release year")
	gamesCmd.Flags().IntVar(&gmTo, "to", 0, "latest release year")
	rootCmd.AddCommand(gamesCmd)
}
