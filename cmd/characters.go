package cmd

import (
	"fmt"

	"github.com/grivg/grivg-cli/internal/dataset"
	"github.com/grivg/grivg-cli/internal/report"
	"github.com/grivg/grivg-cli/internal/stats"
	"github.com/spf13/cobra"
)

var (
	chGenders  []string
	chFrom     int
	chTo       int
	chRoleTabs bool
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Character-level analysis: gender, roles, sexualization",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBundle()
		if err != nil {
			return err
		}
		chars := dataset.FilterByGender(b.Characters, chGenders)
		if chFrom > 0 || chTo > 0 {
			games := dataset.FilterByYearRange(b.Games, "release_year", yearOr(chFrom, 0), yearOr(chTo, 9999))
			chars = charactersOfGames(games, chars)
		}
		fmt.Print(report.Characters(stats.Characters(chars)))
		if chRoleTabs {
			if ct := chars.CrosstabOf("plot_relevance", "gender"); ct != nil {
				fmt.Println()
				fmt.Print(report.CrosstabTable("PLOT RELEVANCE x GENDER", ct))
			}
		}
		return nil
	},
}

func init() {
	charactersCmd.Flags().StringSliceVar(&chGenders, "gender", nil, "restrict to these gender labels (default: all)")
	charactersCmd.Flags().IntVar(&chFrom, "from", 0, "earliest release year (via the character's game)")
	charactersCmd.Flags().IntVar(&chTo, "to", 0, "latest release year (via the character's game)")
	charactersCmd.Flags().BoolVar(&chRoleTabs, "roles", false, "include the plot relevance x gender crosstab")
	rootCmd.AddCommand(charactersCmd)
}
