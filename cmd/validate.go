package cmd

import (
	"fmt"

	"github.com/grivg/grivg-cli/internal/dataset"
	"github.com/grivg/grivg-cli/internal/report"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check referential integrity between characters and games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBundle()
		if err != nil {
			return err
		}
		rep := dataset.Orphans(b.Games, b.Characters)
		fmt.Print(report.Orphans(rep))
		if rep.Count > 0 {
			return fmt.Errorf("%d character rows reference unknown games", rep.Count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
