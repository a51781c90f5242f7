package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rhyrak/krsplan/internal/conflict"
	"github.com/rhyrak/krsplan/internal/scheduler"
	"github.com/rhyrak/krsplan/pkg/model"
	"github.com/spf13/cobra"
)

// autoClass marks a subject whose class the solver should pick.
const autoClass = ""

var planCmd = &cobra.Command{
	Use:   "plan FILE",
	Short: "Interactively choose subjects and classes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, res, err := loadCatalog(cmd, args[0])
		if err != nil {
			return err
		}
		applyExportFlags(cmd, cfg)
		catalog := res.Catalog
		fmt.Println(accentStyle.Render(fmt.Sprintf("Loaded %d subjects", catalog.Len())))

		var subjectOptions []huh.Option[string]
		for _, s := range catalog.Subjects {
			subjectOptions = append(subjectOptions, huh.NewOption(fmt.Sprintf("%s %s (%d SKS)", s.Code, s.Name, s.Credits), s.SubjectID))
		}

		var subjectIDs []string
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title("Select your subjects").
					Description("Space = toggle, Enter = confirm. Start typing to filter.").
					Options(subjectOptions...).
					Value(&subjectIDs).
					Filterable(true).
					Height(15),
			),
		).Run()
		if err != nil {
			return err
		}
		if len(subjectIDs) == 0 {
			fmt.Println(errorStyle.Render("No subjects selected!"))
			return nil
		}

		subjects := make([]*model.Subject, 0, len(subjectIDs))
		chosen := make([]string, len(subjectIDs))
		var fields []huh.Field
		for i, id := range subjectIDs {
			s := catalog.Subject(id)
			subjects = append(subjects, s)

			options := []huh.Option[string]{huh.NewOption("Pick for me", autoClass)}
			for _, c := range s.Classes {
				options = append(options, huh.NewOption(describeClass(c), c.ClassID))
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(s.Code+" "+s.Name).
				Options(options...).
				Value(&chosen[i]))
		}
		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return err
		}

		fixed := make(map[string]string)
		for i, id := range subjectIDs {
			if chosen[i] != autoClass {
				fixed[id] = chosen[i]
			}
		}

		assignment := fixed
		if len(fixed) < len(subjects) {
			assignment, err = scheduler.FillSections(subjects, fixed)
			if err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
				assignment = fixed
			}
		}

		var sel []model.Selection
		for _, s := range subjects {
			if id, ok := assignment[s.SubjectID]; ok {
				sel = append(sel, model.Selection{Subject: s, Class: s.Class(id)})
			}
		}

		clashing := conflict.Conflicts(sel)
		for _, x := range sel {
			line := fmt.Sprintf("%-40s %s", x.Subject.Name, describeClass(x.Class))
			if clashing[x.Class.ClassID] {
				fmt.Println(errorStyle.Render("✗ " + line))
			} else {
				fmt.Println(okStyle.Render("✓ " + line))
			}
		}
		_, report := scheduler.Validate(sel, subjects)
		fmt.Print(report)

		export := false
		err = huh.NewConfirm().
			Title("Export to " + cfg.ExportFile + "?").
			Value(&export).
			Run()
		if err != nil || !export {
			return err
		}
		return writeICS(cfg, sel)
	},
}

func describeClass(c *model.ClassSection) string {
	var meetings []string
	for _, m := range c.Meetings {
		meetings = append(meetings, fmt.Sprintf("%s %s-%s", m.Day, m.Start, m.End))
	}
	return c.ClassName + "  " + strings.Join(meetings, ", ")
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringP("output", "o", "plan.ics", "Output file path")
	planCmd.Flags().String("start", "", "Semester start date (YYYY-MM-DD)")
}
