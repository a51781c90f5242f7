package scheduler

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rhyrak/krsplan/internal/conflict"
	"github.com/rhyrak/krsplan/pkg/model"
)

var ErrNoFeasibleAssignment = errors.New("no conflict-free class assignment")

// FillSections picks one class section for every subject so that no two
// picked sections conflict. Entries already present in fixed (subject id to
// class id) are kept as they are. Subjects with fewer sections are placed
// first. Returns the full assignment.
func FillSections(subjects []*model.Subject, fixed map[string]string) (map[string]string, error) {
	assignment := make(map[string]string, len(subjects))
	var placed []model.Selection
	var open []*model.Subject

	for _, s := range subjects {
		classID, ok := fixed[s.SubjectID]
		if !ok {
			open = append(open, s)
			continue
		}
		cls := s.Class(classID)
		if cls == nil {
			return nil, fmt.Errorf("class %q not offered by %q", classID, s.SubjectID)
		}
		assignment[s.SubjectID] = classID
		placed = append(placed, model.Selection{Subject: s, Class: cls})
	}

	if len(conflict.Conflicts(placed)) > 0 {
		return nil, fmt.Errorf("%w: fixed classes already conflict", ErrNoFeasibleAssignment)
	}

	sort.SliceStable(open, func(i, j int) bool {
		return len(open[i].Classes) < len(open[j].Classes)
	})

	if !place(open, placed, assignment) {
		return nil, ErrNoFeasibleAssignment
	}
	return assignment, nil
}

// place tries every class of the first open subject and recurses on the rest.
func place(open []*model.Subject, placed []model.Selection, assignment map[string]string) bool {
	if len(open) == 0 {
		return true
	}
	subject := open[0]

	for _, cls := range subject.Classes {
		if clashes(cls, placed) {
			continue
		}
		assignment[subject.SubjectID] = cls.ClassID
		if place(open[1:], append(placed, model.Selection{Subject: subject, Class: cls}), assignment) {
			return true
		}
		delete(assignment, subject.SubjectID)
	}
	return false
}

func clashes(cls *model.ClassSection, placed []model.Selection) bool {
	for _, p := range placed {
		if conflict.SectionsConflict(cls, p.Class) {
			return true
		}
	}
	return false
}
