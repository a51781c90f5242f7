package eliminator

import (
	"github.com/rhyrak/krsplan/pkg/model"
)

type message string

func (m message) text() string {
	if m == "" {
		return DefaultMessage
	}
	return string(m)
}

// ChosenNameRule eliminates the subject with exactly the given name.
type ChosenNameRule struct {
	Name    string
	Message string
}

func NewChosenNameRule(name string) *ChosenNameRule {
	return &ChosenNameRule{Name: name}
}

func (r *ChosenNameRule) Apply(candidate model.SubjectSchedule, reasons []string) []string {
	if candidate.Name == r.Name {
		reasons = append(reasons, message(r.Message).text())
	}
	return reasons
}

// UnchosenSetRule keeps only the subjects the student picked.
type UnchosenSetRule struct {
	Message string
	chosen  map[string]struct{}
}

func NewUnchosenSetRule(names ...string) *UnchosenSetRule {
	r := &UnchosenSetRule{chosen: make(map[string]struct{})}
	r.ChooseMany(names)
	return r
}

func (r *UnchosenSetRule) Choose(name string) {
	if r.chosen == nil {
		r.chosen = make(map[string]struct{})
	}
	r.chosen[name] = struct{}{}
}

func (r *UnchosenSetRule) ChooseMany(names []string) {
	for _, n := range names {
		r.Choose(n)
	}
}

func (r *UnchosenSetRule) Apply(candidate model.SubjectSchedule, reasons []string) []string {
	if _, ok := r.chosen[candidate.Name]; !ok {
		reasons = append(reasons, message(r.Message).text())
	}
	return reasons
}

// OverlapTimeRule eliminates everything clashing with a locked-in schedule.
type OverlapTimeRule struct {
	Reference model.Schedule
	Message   string
}

func NewOverlapTimeRule(reference model.Schedule) *OverlapTimeRule {
	return &OverlapTimeRule{Reference: reference}
}

func (r *OverlapTimeRule) Apply(candidate model.SubjectSchedule, reasons []string) []string {
	if r.Reference.Overlaps(candidate.Schedule) {
		reasons = append(reasons, message(r.Message).text())
	}
	return reasons
}
