package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rhyrak/krsplan/internal/csvio"
	"github.com/rhyrak/krsplan/internal/eliminator"
	"github.com/rhyrak/krsplan/pkg/model"
	"github.com/spf13/cobra"
)

var eliminateCmd = &cobra.Command{
	Use:   "eliminate CANDIDATES.csv",
	Short: "Filter candidate schedules with elimination rules",
	Long: `Runs the candidate rows through, in order: the wanted-subject rule (--want),
the drop-subject rule (--drop) and the locked-schedule rule (--lock).
Every rule runs for every candidate, so one candidate may collect several reasons.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		want, _ := cmd.Flags().GetStringArray("want")
		drop, _ := cmd.Flags().GetString("drop")
		lock, _ := cmd.Flags().GetString("lock")
		output, _ := cmd.Flags().GetString("output")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		candidates, err := csvio.LoadSubjectSchedulesFile(args[0], cfg.Rune())
		if err != nil {
			return err
		}

		var locked *model.Schedule
		if lock != "" {
			sched, err := model.ParseSchedule(lock)
			if err != nil {
				return fmt.Errorf("invalid --lock: %w", err)
			}
			locked = &sched
		}

		results := eliminator.Build(want, drop, locked).Run(candidates)
		for _, r := range results {
			label := fmt.Sprintf("%-10s %-32s %-8s %s", r.Candidate.Code, r.Candidate.Name, r.Candidate.ClassName, r.Candidate.Schedule)
			if r.Eliminated() {
				fmt.Println(errorStyle.Render("✗ ") + label + "  " + strings.Join(r.Reasons, "; "))
			} else {
				fmt.Println(okStyle.Render("✓ ") + label)
			}
		}
		fmt.Printf("%s %d of %d candidates remain\n", accentStyle.Render("→"), len(eliminator.Survivors(results)), len(results))

		if output != "" {
			return csvio.ExportFile(output, func(w io.Writer) error {
				return csvio.ExportEliminations(results, w, cfg.Rune())
			})
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(eliminateCmd)
	eliminateCmd.Flags().StringArray("want", nil, "Subject name to keep (repeatable)")
	eliminateCmd.Flags().String("drop", "", "Subject name to remove")
	eliminateCmd.Flags().String("lock", "", `Locked schedule, e.g. "Senin 07:00-09:00"`)
	eliminateCmd.Flags().StringP("output", "o", "", "Write the elimination report to this CSV file")
}
