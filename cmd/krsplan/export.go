package main

import (
	"fmt"
	"io"

	"github.com/rhyrak/krsplan/internal/csvio"
	"github.com/rhyrak/krsplan/internal/exporter"
	"github.com/rhyrak/krsplan/internal/scheduler"
	"github.com/rhyrak/krsplan/pkg/model"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export chosen classes to an ICS calendar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classIDs, _ := cmd.Flags().GetStringArray("class")

		cfg, res, err := loadCatalog(cmd, args[0])
		if err != nil {
			return err
		}
		applyExportFlags(cmd, cfg)

		sel, err := selectClasses(res.Catalog, classIDs)
		if err != nil {
			return err
		}
		return writeICS(cfg, sel)
	},
}

func applyExportFlags(cmd *cobra.Command, cfg *scheduler.Configuration) {
	if cmd.Flags().Changed("output") {
		cfg.ExportFile, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("start") {
		cfg.SemesterStart, _ = cmd.Flags().GetString("start")
	}
}

func writeICS(cfg *scheduler.Configuration, sel []model.Selection) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	start, err := cfg.Start(loc)
	if err != nil {
		return err
	}

	err = csvio.ExportFile(cfg.ExportFile, func(w io.Writer) error {
		return exporter.GenerateICS(sel, exporter.Options{Start: start, Weeks: cfg.Weeks}, w)
	})
	if err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(okStyle.Render(fmt.Sprintf("Successfully exported %d classes to %s", len(sel), cfg.ExportFile)))
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringArrayP("class", "c", nil, "Class id to export (repeatable)")
	exportCmd.Flags().StringP("output", "o", "plan.ics", "Output file path")
	exportCmd.Flags().String("start", "", "Semester start date (YYYY-MM-DD)")
	exportCmd.MarkFlagRequired("class")
}
