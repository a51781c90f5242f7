package parser

import (
	"reflect"
	"testing"
)

func TestReconstructColumns(t *testing.T) {
	got, ok := reconstructColumns("Teknik Kimia. 021250372 Praktikum Simulasi Komputer DTK-B 2 0 Senin 00:00-00:00")
	if !ok {
		t.Fatalf("expected reconstruction to succeed")
	}
	want := []string{"Teknik Kimia.", "021250372", "Praktikum Simulasi Komputer", "DTK-B", "2", "0", "Senin 00:00-00:00", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q\nexpected %q", got, want)
	}
}

func TestReconstructColumnsRejects(t *testing.T) {
	for _, line := range []string{
		"Dr. Retno Ringgani ST., M.Eng",
		"Teknik Kimia. 021250372 Praktikum DTK-B dua 0 Senin 07:00-09:00",
		"IF-A 3 40",
		"Susanti Rina Nugraheni ST,M.Eng",
	} {
		if cols, ok := reconstructColumns(line); ok {
			t.Errorf("expected %q to be rejected, got %q", line, cols)
		}
	}
}

func TestDetectLayout(t *testing.T) {
	tests := []struct {
		c3, c4 string
		want   Layout
	}{
		{"3", "IF-A", LayoutA},
		{"IF-A", "3", LayoutB},
		{"1", "2", LayoutA},
		{"x", "y z", LayoutUnknown},
		{"Kelas A", "3", LayoutUnknown},
	}
	for _, tt := range tests {
		cols := []string{"p", "c", "n", tt.c3, tt.c4, "0", "Senin 07:00-09:00"}
		if got := detectLayout(cols); got != tt.want {
			t.Errorf("detectLayout(%q, %q) = %v, expected %v", tt.c3, tt.c4, got, tt.want)
		}
	}

	credits, class := fieldIndexes(LayoutUnknown, []string{"p", "c", "n", "Kelas A", "3", "0", ""})
	if credits != 4 || class != 3 {
		t.Errorf("expected unknown layout with numeric column 4 to read credits from it, got %d %d", credits, class)
	}
}

func TestSplitColumns(t *testing.T) {
	got := splitColumns("a\tb  c   d e\t\tf")
	want := []string{"a", "b", "c", "d e", "", "f"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, expected %q", got, want)
	}
}
