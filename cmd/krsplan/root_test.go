package main

import (
	"testing"

	"github.com/rhyrak/krsplan/internal/parser"
)

const catalogText = "Teknik Kimia.\t021250342\tPerpindahan Kalor\tDTK-A\t2\t0\tSenin 07:00-08:45\tR.II-1\t\n" +
	"Teknik Kimia.\t021250342\tPerpindahan Kalor\tDTK-A\t2\t0\tKamis 10:00-11:45\tR.II-1\t\n"

func TestSelectClasses(t *testing.T) {
	res, err := parser.Parse(catalogText)
	if err != nil {
		t.Fatal(err)
	}

	sel, err := selectClasses(res.Catalog, []string{"021250342-Perpindahan Kalor-DTK-A"})
	if err != nil {
		t.Fatalf("selectClasses failed: %v", err)
	}
	if len(sel) != 1 || sel[0].Subject.Code != "021250342" {
		t.Fatalf("unexpected selection %+v", sel)
	}

	if _, err := selectClasses(res.Catalog, []string{"missing"}); err == nil {
		t.Errorf("expected error for unknown class")
	}
}

func TestDescribeClass(t *testing.T) {
	res, err := parser.Parse(catalogText)
	if err != nil {
		t.Fatal(err)
	}
	_, c := res.Catalog.Class("021250342-Perpindahan Kalor-DTK-A")
	if c == nil {
		t.Fatal("class not found")
	}
	want := "DTK-A  Senin 07:00-08:45, Kamis 10:00-11:45"
	if got := describeClass(c); got != want {
		t.Errorf("describeClass = %q, want %q", got, want)
	}
}
