package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gocarina/gocsv"
	"github.com/rhyrak/krsplan/internal/eliminator"
	"github.com/rhyrak/krsplan/pkg/model"
)

type EliminationCSVRow struct {
	Code       string         `csv:"code"`
	Name       string         `csv:"name"`
	ClassName  string         `csv:"class_name"`
	Schedule   model.Schedule `csv:"schedule"`
	Eliminated bool           `csv:"eliminated"`
	Reasons    string         `csv:"reasons"`
}

// ExportSubjectSchedules writes rows with a header line.
func ExportSubjectSchedules(rows []model.SubjectSchedule, out io.Writer, delim rune) error {
	w := csv.NewWriter(out)
	w.Comma = delim
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		return fmt.Errorf("failed to write candidates: %w", err)
	}
	return nil
}

// ExportEliminations writes one row per candidate with its joined reasons.
func ExportEliminations(results []eliminator.Result, out io.Writer, delim rune) error {
	rows := make([]*EliminationCSVRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, &EliminationCSVRow{
			Code:       r.Candidate.Code,
			Name:       r.Candidate.Name,
			ClassName:  r.Candidate.ClassName,
			Schedule:   r.Candidate.Schedule,
			Eliminated: r.Eliminated(),
			Reasons:    strings.Join(r.Reasons, "; "),
		})
	}

	w := csv.NewWriter(out)
	w.Comma = delim
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		return fmt.Errorf("failed to write eliminations: %w", err)
	}
	return nil
}

// ExportFile creates path and hands it to write.
func ExportFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()
	return write(out)
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintCatalog prints every subject with its classes, meetings and lecturers.
func PrintCatalog(out io.Writer, catalog *model.Catalog) {
	for _, s := range catalog.Subjects {
		fmt.Fprintf(out, "\n%s\n", headingStyle.Render(fmt.Sprintf("%s %s (%d SKS)", s.Code, s.Name, s.Credits)))
		for _, c := range s.Classes {
			capacity := "-"
			if c.Capacity != nil {
				capacity = fmt.Sprintf("%d", *c.Capacity)
			}
			fmt.Fprintf(out, "  %-12s cap %-4s %s\n", c.ClassName, capacity, dimStyle.Render(strings.Join(c.Lecturers, ", ")))
			for _, m := range c.Meetings {
				fmt.Fprintf(out, "    %-8s %s-%s   %s\n", m.Day, m.Start, m.End, m.Room)
			}
		}
	}
	fmt.Fprintf(out, "Printed subjects: %d\n", catalog.Len())
}
