package main

import (
	"fmt"

	"github.com/rhyrak/krsplan/internal/scheduler"
	"github.com/rhyrak/krsplan/pkg/model"
	"github.com/spf13/cobra"
)

var fillCmd = &cobra.Command{
	Use:   "fill FILE",
	Short: "Pick a conflict-free class for every chosen subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subjectIDs, _ := cmd.Flags().GetStringArray("subject")
		classIDs, _ := cmd.Flags().GetStringArray("class")

		_, res, err := loadCatalog(cmd, args[0])
		if err != nil {
			return err
		}

		var subjects []*model.Subject
		for _, id := range subjectIDs {
			s := res.Catalog.Subject(id)
			if s == nil {
				return fmt.Errorf("subject %q not found in catalog", id)
			}
			subjects = append(subjects, s)
		}

		fixed := make(map[string]string)
		sel, err := selectClasses(res.Catalog, classIDs)
		if err != nil {
			return err
		}
		for _, s := range sel {
			fixed[s.Subject.SubjectID] = s.Class.ClassID
		}

		assignment, err := scheduler.FillSections(subjects, fixed)
		if err != nil {
			return err
		}
		for _, s := range subjects {
			fmt.Printf("%s  %s\n", accentStyle.Render(s.SubjectID), assignment[s.SubjectID])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
	fillCmd.Flags().StringArrayP("subject", "s", nil, "Subject id to schedule (repeatable)")
	fillCmd.Flags().StringArrayP("class", "c", nil, "Class id that must be kept (repeatable)")
	fillCmd.MarkFlagRequired("subject")
}
