package model

import (
	"strings"
)

// Meeting is one weekly session of a class as read from the catalog text.
// Start and End are HH:MM strings.
type Meeting struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
	Room  string `json:"room"`
}

// Schedule converts the meeting into a comparable Schedule.
func (m Meeting) Schedule() (Schedule, error) {
	return ParseSchedule(m.Day + " " + m.Start + "-" + m.End)
}

type ClassSection struct {
	ClassID   string    `json:"classId"`
	ClassName string    `json:"className"`
	Meetings  []Meeting `json:"meetings"`
	Lecturers []string  `json:"lecturers"`
	Capacity  *int      `json:"capacity,omitempty"`
}

// AddLecturer appends name unless it is empty or already listed.
// Returns true if the lecturer list changed.
func (c *ClassSection) AddLecturer(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, l := range c.Lecturers {
		if l == name {
			return false
		}
	}
	c.Lecturers = append(c.Lecturers, name)
	return true
}

type Subject struct {
	SubjectID    string          `json:"subjectId"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Credits      int             `json:"credits"`
	StudyProgram string          `json:"studyProgram,omitempty"`
	Classes      []*ClassSection `json:"classes"`
}

// Class returns the section with the given id, or nil.
func (s *Subject) Class(classID string) *ClassSection {
	for _, c := range s.Classes {
		if c.ClassID == classID {
			return c
		}
	}
	return nil
}

func SubjectID(code, name string) string {
	return code + "-" + name
}

func ClassID(subjectID, className string) string {
	return subjectID + "-" + className
}

// Catalog holds subjects in first-seen order, keyed by subject id.
type Catalog struct {
	Subjects []*Subject `json:"subjects"`
	index    map[string]*Subject
}

func NewCatalog() *Catalog {
	return &Catalog{Subjects: []*Subject{}, index: make(map[string]*Subject)}
}

// Subject returns the subject with the given id, or nil. It never modifies
// the catalog, so concurrent lookups are safe.
func (c *Catalog) Subject(subjectID string) *Subject {
	if c.index != nil {
		return c.index[subjectID]
	}
	for _, s := range c.Subjects {
		if s.SubjectID == subjectID {
			return s
		}
	}
	return nil
}

// Upsert returns the existing subject for code and name or registers a new one.
func (c *Catalog) Upsert(code, name string) (*Subject, bool) {
	if c.index == nil {
		c.reindex()
	}
	id := SubjectID(code, name)
	if s := c.index[id]; s != nil {
		return s, false
	}
	s := &Subject{SubjectID: id, Code: code, Name: name, Classes: []*ClassSection{}}
	c.Subjects = append(c.Subjects, s)
	c.index[id] = s
	return s, true
}

// Class finds a class section anywhere in the catalog.
func (c *Catalog) Class(classID string) (*Subject, *ClassSection) {
	for _, s := range c.Subjects {
		if cls := s.Class(classID); cls != nil {
			return s, cls
		}
	}
	return nil, nil
}

func (c *Catalog) Len() int {
	return len(c.Subjects)
}

// reindex rebuilds the lookup table, e.g. after JSON decoding.
func (c *Catalog) reindex() {
	c.index = make(map[string]*Subject, len(c.Subjects))
	for _, s := range c.Subjects {
		c.index[s.SubjectID] = s
	}
}

// Selection pairs a subject with the class section chosen for it.
type Selection struct {
	Subject *Subject
	Class   *ClassSection
}
