package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rhyrak/krsplan/pkg/model"
)

// DefaultDepartmentHeader is the column header that some exports repeat in
// the middle of the table. Lines starting with it are never records or
// lecturers.
const DefaultDepartmentHeader = "Program Studi"

var (
	ErrEmptyParseResult = errors.New("no subjects found, check the input format")
	// ErrUnresolvableLayout is only reported through diagnostics; such rows
	// are still parsed best effort.
	ErrUnresolvableLayout = errors.New("row layout could not be resolved")
	errShortRow           = errors.New("record row has too few columns")
)

// Debug counts how lines were classified. It never influences the catalog.
type Debug struct {
	Lines          int `json:"lines"`
	LayoutA        int `json:"layoutA"`
	LayoutB        int `json:"layoutB"`
	UnknownLayout  int `json:"unknownLayout"`
	Reconstructed  int `json:"reconstructed"`
	LecturerLines  int `json:"lecturerLines"`
	Skipped        int `json:"skipped"`
	MalformedTimes int `json:"malformedTimes"`
}

type Result struct {
	Catalog *model.Catalog `json:"catalog"`
	Debug   Debug          `json:"debug"`
}

// CatalogParser turns pasted catalog text into a Catalog.
type CatalogParser struct {
	DepartmentHeader string
	Logger           *slog.Logger
}

func NewCatalogParser() *CatalogParser {
	return &CatalogParser{DepartmentHeader: DefaultDepartmentHeader}
}

// Parse runs a default CatalogParser over text.
func Parse(text string) (*Result, error) {
	return NewCatalogParser().Parse(text)
}

// record is one row after column assignment.
type record struct {
	program   string
	code      string
	name      string
	credits   int
	className string
	capacity  *int
	schedule  string
	room      string
}

// Parse reads text line by line. Record rows create or extend subjects and
// class sections; any other line is a lecturer of the last class seen.
// Returns ErrEmptyParseResult if nothing could be read.
func (p *CatalogParser) Parse(text string) (*Result, error) {
	log := p.Logger
	if log == nil {
		log = slog.Default()
	}

	res := &Result{Catalog: model.NewCatalog()}
	var current *model.ClassSection

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		res.Debug.Lines++

		cols := splitColumns(line)
		if len(cols) < minColumns {
			rebuilt, ok := reconstructColumns(line)
			if !ok {
				if p.isHeader(trimmed) {
					res.Debug.Skipped++
					continue
				}
				res.Debug.LecturerLines++
				if current != nil {
					current.AddLecturer(trimmed)
				}
				continue
			}
			cols = rebuilt
			res.Debug.Reconstructed++
		}
		if p.isHeaderRow(cols) {
			res.Debug.Skipped++
			continue
		}

		layout := detectLayout(cols)
		switch layout {
		case LayoutA:
			res.Debug.LayoutA++
		case LayoutB:
			res.Debug.LayoutB++
		default:
			res.Debug.UnknownLayout++
			log.Warn("parse catalog", "err", ErrUnresolvableLayout, "line", res.Debug.Lines)
		}

		rec, err := buildRecord(cols, layout)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", res.Debug.Lines, err)
		}
		if rec.code == "" || rec.name == "" {
			res.Debug.Skipped++
			continue
		}

		meeting, malformed := buildMeeting(rec.schedule, rec.room)
		if malformed {
			res.Debug.MalformedTimes++
			log.Warn("parse catalog", "err", model.ErrMalformedTime, "line", res.Debug.Lines, "schedule", rec.schedule)
		}

		current = addRecord(res.Catalog, rec, meeting)
	}

	if res.Catalog.Len() == 0 {
		return nil, ErrEmptyParseResult
	}
	return res, nil
}

// isHeader reports a non-record line starting with the department header.
func (p *CatalogParser) isHeader(line string) bool {
	return p.DepartmentHeader != "" && strings.HasPrefix(line, p.DepartmentHeader)
}

// isHeaderRow reports the repeated column header row. Record rows whose
// program merely starts with the header text are kept.
func (p *CatalogParser) isHeaderRow(cols []string) bool {
	return p.DepartmentHeader != "" && strings.TrimSpace(cols[0]) == p.DepartmentHeader
}

// buildRecord maps columns to fields. Callers only pass rows of at least
// minColumns, so errShortRow marks a broken invariant and aborts the parse.
func buildRecord(cols []string, layout Layout) (record, error) {
	if len(cols) < minColumns {
		return record{}, errShortRow
	}
	creditIdx, classIdx := fieldIndexes(layout, cols)

	rec := record{
		program:   strings.TrimSpace(cols[0]),
		code:      strings.TrimSpace(cols[1]),
		name:      strings.TrimSpace(cols[2]),
		credits:   atoiOrZero(cols[creditIdx]),
		className: strings.TrimSpace(cols[classIdx]),
		schedule:  strings.TrimSpace(cols[6]),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(cols[5])); err == nil {
		rec.capacity = &n
	}
	if len(cols) > 7 {
		rec.room = strings.TrimSpace(cols[7])
	}
	return rec, nil
}

// buildMeeting splits "<day> <start>-<end>". Empty time tokens become 00:00;
// malformed ones are kept verbatim and reported.
func buildMeeting(schedule, room string) (model.Meeting, bool) {
	day, span, _ := strings.Cut(schedule, " ")
	start, end, _ := strings.Cut(strings.TrimSpace(span), "-")

	var malformed bool
	normalize := func(token string) string {
		t, err := model.NormalizeTime(token)
		if err != nil {
			malformed = true
			return strings.TrimSpace(token)
		}
		return t
	}

	m := model.Meeting{
		Day:   day,
		Start: normalize(start),
		End:   normalize(end),
		Room:  room,
	}
	return m, malformed
}

// addRecord files a meeting under its subject and class, creating either if
// needed, and returns the class section.
func addRecord(catalog *model.Catalog, rec record, meeting model.Meeting) *model.ClassSection {
	subject, created := catalog.Upsert(rec.code, rec.name)
	if created {
		subject.Credits = rec.credits
		subject.StudyProgram = rec.program
	}

	classID := model.ClassID(subject.SubjectID, rec.className)
	if cls := subject.Class(classID); cls != nil {
		cls.Meetings = append(cls.Meetings, meeting)
		return cls
	}

	cls := &model.ClassSection{
		ClassID:   classID,
		ClassName: rec.className,
		Meetings:  []model.Meeting{meeting},
		Lecturers: []string{},
		Capacity:  rec.capacity,
	}
	subject.Classes = append(subject.Classes, cls)
	return cls
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
