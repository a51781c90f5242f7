package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rhyrak/krsplan/internal/csvio"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse catalog text into subjects and classes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		debug, _ := cmd.Flags().GetBool("debug")

		cfg, res, err := loadCatalog(cmd, args[0])
		if err != nil {
			return err
		}

		switch format {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if debug {
				return enc.Encode(res)
			}
			return enc.Encode(res.Catalog)
		case "csv":
			if err := csvio.ExportSubjectSchedules(csvio.Flatten(res.Catalog), os.Stdout, cfg.Rune()); err != nil {
				return err
			}
		case "table":
			csvio.PrintCatalog(os.Stdout, res.Catalog)
		default:
			return fmt.Errorf("unknown format %q", format)
		}

		if debug {
			d := res.Debug
			fmt.Fprintf(os.Stderr, "lines=%d layoutA=%d layoutB=%d unknown=%d reconstructed=%d lecturers=%d skipped=%d malformedTimes=%d\n",
				d.Lines, d.LayoutA, d.LayoutB, d.UnknownLayout, d.Reconstructed, d.LecturerLines, d.Skipped, d.MalformedTimes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("format", "f", "table", "Output format: json, csv or table")
	parseCmd.Flags().Bool("debug", false, "Print layout diagnostics")
}
