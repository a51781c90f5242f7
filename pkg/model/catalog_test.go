package model

import (
	"encoding/json"
	"testing"
)

func TestCatalogUpsert(t *testing.T) {
	c := NewCatalog()
	s1, created := c.Upsert("021250342", "Perpindahan Kalor")
	if !created {
		t.Fatalf("expected first upsert to create subject")
	}
	s2, created := c.Upsert("021250342", "Perpindahan Kalor")
	if created || s1 != s2 {
		t.Errorf("expected second upsert to return existing subject")
	}
	if s1.SubjectID != "021250342-Perpindahan Kalor" {
		t.Errorf("unexpected subject id %q", s1.SubjectID)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 subject, got %d", c.Len())
	}
}

func TestCatalogLookupAfterDecode(t *testing.T) {
	c := NewCatalog()
	s, _ := c.Upsert("A1", "Kalkulus")
	s.Classes = append(s.Classes, &ClassSection{ClassID: ClassID(s.SubjectID, "A"), ClassName: "A"})

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded Catalog
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.Subject("A1-Kalkulus") == nil {
		t.Fatalf("expected decoded catalog to find subject by id")
	}
	sub, cls := decoded.Class("A1-Kalkulus-A")
	if sub == nil || cls == nil || cls.ClassName != "A" {
		t.Errorf("expected class lookup to succeed, got %v %v", sub, cls)
	}
}

func TestAddLecturer(t *testing.T) {
	var c ClassSection
	if !c.AddLecturer(" Dr. Retno ") {
		t.Errorf("expected lecturer to be added")
	}
	if c.AddLecturer("Dr. Retno") || c.AddLecturer("   ") {
		t.Errorf("expected duplicate and blank lecturers to be ignored")
	}
	if len(c.Lecturers) != 1 || c.Lecturers[0] != "Dr. Retno" {
		t.Errorf("unexpected lecturers %v", c.Lecturers)
	}
}
