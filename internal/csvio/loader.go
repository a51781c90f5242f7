package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/krsplan/internal/parser"
	"github.com/rhyrak/krsplan/pkg/model"
)

// LoadCatalog reads the raw catalog export at path and parses it.
func LoadCatalog(path string, p *parser.CatalogParser) (*parser.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	res, err := p.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return res, nil
}

// LoadSubjectSchedules reads flattened candidate rows with a header line.
func LoadSubjectSchedules(in io.Reader, delim rune) ([]model.SubjectSchedule, error) {
	r := csv.NewReader(in)
	r.Comma = delim
	r.FieldsPerRecord = -1

	rows := []model.SubjectSchedule{}
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse candidates: %w", err)
	}
	return rows, nil
}

// LoadSubjectSchedulesFile is LoadSubjectSchedules over a file.
func LoadSubjectSchedulesFile(path string, delim rune) ([]model.SubjectSchedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return LoadSubjectSchedules(f, delim)
}

// Flatten turns a catalog into one SubjectSchedule per class meeting,
// numbered from 1 in catalog order. Meetings with unreadable times keep their
// day and a zero interval.
func Flatten(catalog *model.Catalog) []model.SubjectSchedule {
	var rows []model.SubjectSchedule
	id := 1
	for _, s := range catalog.Subjects {
		for _, cls := range s.Classes {
			students := 0
			if cls.Capacity != nil {
				students = *cls.Capacity
			}
			for _, m := range cls.Meetings {
				schedule, err := m.Schedule()
				if err != nil {
					schedule = model.Schedule{Day: m.Day}
				}
				rows = append(rows, model.SubjectSchedule{
					ID:               id,
					StudyProgram:     s.StudyProgram,
					Code:             s.Code,
					Name:             s.Name,
					Credits:          s.Credits,
					ClassName:        cls.ClassName,
					NumberOfStudents: students,
					Schedule:         schedule,
					ClassRoom:        m.Room,
					Lecturers:        append(model.Lecturers{}, cls.Lecturers...),
				})
				id++
			}
		}
	}
	return rows
}
