package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/grivg/grivg-cli/internal/dataset"
	"github.com/grivg/grivg-cli/internal/frame"
	"github.com/grivg/grivg-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	exTable   string
	exOut     string
	exFrom    int
	exTo      int
	exGenders []string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a filtered view as delimited text",
	Long: `Export writes one normalized table, optionally filtered, as a CSV
download. Rows with an unknown release year are retained so the export
matches the full table minus only the rows a filter explicitly excludes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBundle()
		if err != nil {
			return err
		}
		var view *frame.Frame
		yearCol := "release_year"
		switch exTable {
		case "games":
			view = b.Games
		case "characters":
			view = b.Characters
			yearCol = "" // characters carry no year column of their own
		case "sexualization":
			view = b.Sexualization
			yearCol = ""
		default:
			return fmt.Errorf("unsupported --table: %s (use games|characters|sexualization)", exTable)
		}

		if yearCol != "" && (exFrom > 0 || exTo > 0) {
			view = dataset.FilterByYearRangeKeepUnknown(view, yearCol, yearOr(exFrom, 0), yearOr(exTo, 9999))
		}
		if exTable == "characters" {
			view = dataset.FilterByGender(view, exGenders)
		}

		out := exOut
		if out == "" {
			dir := cfg.ExportDir
			if dir == "" {
				dir = "."
			}
			if err := utils.EnsureDir(dir); err != nil {
				return fmt.Errorf("ensure export dir: %w", err)
			}
			out = filepath.Join(dir, fmt.Sprintf("%s-%s.csv", exTable, uuid.NewString()))
		}

		var buf bytes.Buffer
		if err := view.WriteCSV(&buf, ','); err != nil {
			return fmt.Errorf("serialize %s: %w", exTable, err)
		}
		if err := utils.SafeWriteFile(out, buf.Bytes()); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("✓ Exported %d rows to %s\n", view.Len(), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exTable, "table", "games", "table to export: games|characters|sexualization")
	exportCmd.Flags().StringVar(&exOut, "out", "", "output file (default: <export_dir>/<table>-<id>.csv)")
	exportCmd.Flags().IntVar(&exFrom, "from", 0, "earliest release year (games only; unknown years kept)")
	exportCmd.Flags().IntVar(&exTo, "to", 0, "latest release year (games only; unknown years kept)")
	exportCmd.Flags().StringSliceVar(&exGenders, "gender", nil, "restrict characters to these gender labels")
	rootCmd.AddCommand(exportCmd)
}
