package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rhyrak/krsplan/internal/eliminator"
	"github.com/rhyrak/krsplan/internal/parser"
	"github.com/rhyrak/krsplan/pkg/model"
)

const catalogText = "Informatika\tIF101\tKalkulus\t3\tIF-A\t40\tSenin 07:00-09:00\tR.101\n" +
	"Dr. Budi\n" +
	"Dr. Sari\n" +
	"Informatika\tIF101\tKalkulus\t3\tIF-A\t40\tKamis 10:00-12:00\tR.103\n" +
	"Informatika\tIF202\tBasis Data\tIF-B\t4\t35\tSenin 08:00-10:00\tLab 2\n"

func parseCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	res, err := parser.Parse(catalogText)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return res.Catalog
}

func TestFlatten(t *testing.T) {
	rows := Flatten(parseCatalog(t))
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.ID != 1 || first.Code != "IF101" || first.ClassName != "IF-A" || first.NumberOfStudents != 40 {
		t.Errorf("unexpected first row %+v", first)
	}
	if first.Schedule.String() != "Senin 07:00-09:00" || first.ClassRoom != "R.101" {
		t.Errorf("unexpected schedule %s in %s", first.Schedule, first.ClassRoom)
	}
	if len(first.Lecturers) != 2 || first.StudyProgram != "Informatika" {
		t.Errorf("unexpected lecturers/program %+v", first)
	}
	if rows[1].Schedule.Day != "Kamis" || rows[2].ID != 3 {
		t.Errorf("expected meetings flattened in order, got %+v", rows)
	}
}

func TestSubjectSchedulesCSV(t *testing.T) {
	rows := Flatten(parseCatalog(t))

	var buf bytes.Buffer
	if err := ExportSubjectSchedules(rows, &buf, ';'); err != nil {
		t.Fatalf("ExportSubjectSchedules failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "id;study_program;code;name;credits;class_name;number_of_students;schedule;class_room;lecturers") {
		t.Errorf("unexpected header:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Dr. Budi; Dr. Sari") {
		t.Errorf("expected lecturers joined in one cell:\n%s", buf.String())
	}

	loaded, err := LoadSubjectSchedules(&buf, ';')
	if err != nil {
		t.Fatalf("LoadSubjectSchedules failed: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("expected 3 rows back, got %d", len(loaded))
	}
	if loaded[2].Schedule != rows[2].Schedule || loaded[0].Lecturers[1] != "Dr. Sari" {
		t.Errorf("unexpected reloaded rows %+v", loaded)
	}
}

func TestLoadSubjectSchedulesBadSchedule(t *testing.T) {
	in := strings.NewReader("id,code,name,schedule\n1,IF101,Kalkulus,Senin\n")
	if _, err := LoadSubjectSchedules(in, ','); err == nil {
		t.Errorf("expected error for schedule without time range")
	}
}

func TestExportEliminations(t *testing.T) {
	rows := Flatten(parseCatalog(t))
	results := eliminator.NewChain(eliminator.NewUnchosenSetRule("Basis Data")).Run(rows)

	var buf bytes.Buffer
	if err := ExportEliminations(results, &buf, ','); err != nil {
		t.Fatalf("ExportEliminations failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got:\n%s", buf.String())
	}
	if lines[1] != "IF101,Kalkulus,IF-A,Senin 07:00-09:00,true,Eliminated" {
		t.Errorf("unexpected row %q", lines[1])
	}
	if lines[3] != "IF202,Basis Data,IF-B,Senin 08:00-10:00,false," {
		t.Errorf("unexpected row %q", lines[3])
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bima.txt")
	if err := os.WriteFile(path, []byte(catalogText), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	res, err := LoadCatalog(path, parser.NewCatalogParser())
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if res.Catalog.Len() != 2 {
		t.Errorf("expected 2 subjects, got %d", res.Catalog.Len())
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.txt"), parser.NewCatalogParser()); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	PrintCatalog(&buf, parseCatalog(t))

	out := buf.String()
	for _, part := range []string{"Kalkulus", "IF-A", "Kamis", "R.103", "Printed subjects: 2"} {
		if !strings.Contains(out, part) {
			t.Errorf("expected output to contain %q, got:\n%s", part, out)
		}
	}
}
