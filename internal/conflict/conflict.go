package conflict

import (
	"log/slog"

	"github.com/rhyrak/krsplan/pkg/model"
)

// Checker compares meetings and class sections for time overlap.
type Checker struct {
	Logger *slog.Logger
}

var defaultChecker = &Checker{}

// MeetingsOverlap reports whether two meetings share a day and overlap in
// time. A meeting whose times cannot be read never conflicts.
func (c *Checker) MeetingsOverlap(m1, m2 model.Meeting) bool {
	s1, err1 := m1.Schedule()
	s2, err2 := m2.Schedule()
	if err1 != nil || err2 != nil {
		c.logger().Warn("invalid schedule format for overlap check", "first", m1, "second", m2)
		return false
	}
	return s1.Overlaps(s2)
}

// SectionsConflict is true if any meeting of c1 overlaps any meeting of c2.
func (c *Checker) SectionsConflict(c1, c2 *model.ClassSection) bool {
	for _, m1 := range c1.Meetings {
		for _, m2 := range c2.Meetings {
			if c.MeetingsOverlap(m1, m2) {
				return true
			}
		}
	}
	return false
}

// Conflicts returns the ids of every selected class that clashes with at
// least one other selected class.
func (c *Checker) Conflicts(selections []model.Selection) map[string]bool {
	res := make(map[string]bool)
	for i := 0; i < len(selections); i++ {
		for j := i + 1; j < len(selections); j++ {
			if c.SectionsConflict(selections[i].Class, selections[j].Class) {
				res[selections[i].Class.ClassID] = true
				res[selections[j].Class.ClassID] = true
			}
		}
	}
	return res
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func MeetingsOverlap(m1, m2 model.Meeting) bool {
	return defaultChecker.MeetingsOverlap(m1, m2)
}

func SectionsConflict(c1, c2 *model.ClassSection) bool {
	return defaultChecker.SectionsConflict(c1, c2)
}

func Conflicts(selections []model.Selection) map[string]bool {
	return defaultChecker.Conflicts(selections)
}
