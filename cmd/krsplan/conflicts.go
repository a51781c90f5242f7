package main

import (
	"fmt"

	"github.com/rhyrak/krsplan/internal/conflict"
	"github.com/rhyrak/krsplan/internal/scheduler"
	"github.com/rhyrak/krsplan/pkg/model"
	"github.com/spf13/cobra"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts FILE",
	Short: "Check chosen classes for time conflicts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classIDs, _ := cmd.Flags().GetStringArray("class")

		_, res, err := loadCatalog(cmd, args[0])
		if err != nil {
			return err
		}
		sel, err := selectClasses(res.Catalog, classIDs)
		if err != nil {
			return err
		}

		found := conflict.Conflicts(sel)
		for _, s := range sel {
			if found[s.Class.ClassID] {
				fmt.Println(errorStyle.Render("✗ " + s.Class.ClassID))
			} else {
				fmt.Println(okStyle.Render("✓ " + s.Class.ClassID))
			}
		}

		wanted := make([]*model.Subject, 0, len(sel))
		for _, s := range sel {
			wanted = append(wanted, s.Subject)
		}
		valid, msg := scheduler.Validate(sel, wanted)
		fmt.Print(msg)
		if !valid {
			return fmt.Errorf("%d classes conflict", len(found))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(conflictsCmd)
	conflictsCmd.Flags().StringArrayP("class", "c", nil, "Class id to include (repeatable)")
	conflictsCmd.MarkFlagRequired("class")
}
