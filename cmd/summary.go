package cmd

import (
	"fmt"

	"github.com/grivg/grivg-cli/internal/dataset"
	"github.com/grivg/grivg-cli/internal/report"
	"github.com/grivg/grivg-cli/internal/utils"
	"github.com/spf13/cobra"
)

var sumJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dataset overview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBundle()
		if err != nil {
			return err
		}
		s := dataset.Summarize(b.Games, b.Characters)
		if sumJSON {
			out, err := utils.PrettyJSON(s)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		fmt.Print(report.Summary(s))
		return nil
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&sumJSON, "json", false, "emit the summary as JSON")
	rootCmd.AddCommand(summaryCmd)
}
