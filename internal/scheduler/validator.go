package scheduler

import (
	"fmt"

	"github.com/rhyrak/krsplan/internal/conflict"
	"github.com/rhyrak/krsplan/pkg/model"
)

// Validate checks a plan for subjects without a class and for clashing
// classes. Returns false and a message for invalid plans.
func Validate(selections []model.Selection, wanted []*model.Subject) (bool, string) {
	var message string
	var valid bool = true

	chosen := make(map[string]bool, len(selections))
	for _, s := range selections {
		chosen[s.Subject.SubjectID] = true
	}

	var unassigned []*model.Subject
	for _, s := range wanted {
		if !chosen[s.SubjectID] {
			unassigned = append(unassigned, s)
		}
	}
	if len(unassigned) > 0 {
		valid = false
		message = fmt.Sprintf("- There are %d subjects without a class:\n", len(unassigned))
		for _, un := range unassigned {
			message += fmt.Sprintf("    %s %s %d\n", un.Code, un.Name, un.Credits)
		}
	}

	var hasCollision bool
	for i := 0; i < len(selections); i++ {
		for j := i + 1; j < len(selections); j++ {
			if conflict.SectionsConflict(selections[i].Class, selections[j].Class) {
				valid = false
				hasCollision = true
				message += "- " + selections[i].Class.ClassID + " conflicts with " + selections[j].Class.ClassID + "\n"
			}
		}
	}

	if hasCollision {
		message = "[FAIL]: Class collision check.\n" + message
	} else {
		message = "[  OK]: Class collision check.\n" + message
	}
	if len(unassigned) > 0 {
		message = "[FAIL]: Subject has class check.\n" + message
	} else {
		message = "[  OK]: Subject has class check.\n" + message
	}

	return valid, message
}
