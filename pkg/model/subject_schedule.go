package model

import "strings"

// Lecturers is written to CSV as a single "; " separated cell.
type Lecturers []string

func (l Lecturers) MarshalCSV() (string, error) {
	return strings.Join(l, "; "), nil
}

func (l *Lecturers) UnmarshalCSV(cell string) error {
	*l = Lecturers{}
	for _, name := range strings.Split(cell, ";") {
		if name = strings.TrimSpace(name); name != "" {
			*l = append(*l, name)
		}
	}
	return nil
}

// SubjectSchedule is the flattened one-meeting-per-row view used by the
// elimination rules.
type SubjectSchedule struct {
	ID               int       `csv:"id" json:"id"`
	StudyProgram     string    `csv:"study_program" json:"studyProgram"`
	Code             string    `csv:"code" json:"code"`
	Name             string    `csv:"name" json:"name"`
	Credits          int       `csv:"credits" json:"credits"`
	ClassName        string    `csv:"class_name" json:"className"`
	NumberOfStudents int       `csv:"number_of_students" json:"numberOfStudents"`
	Schedule         Schedule  `csv:"schedule" json:"schedule"`
	ClassRoom        string    `csv:"class_room" json:"classRoom"`
	Lecturers        Lecturers `csv:"lecturers" json:"lecturers"`
}
