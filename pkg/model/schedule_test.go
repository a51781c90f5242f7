package model

import (
	"errors"
	"testing"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want Time
	}{
		{"7:30", Time{7, 30}},
		{"07:05", Time{7, 5}},
		{"9", Time{9, 0}},
		{"13:", Time{13, 0}},
		{" 8:00 ", Time{8, 0}},
		{"0:00", Time{0, 0}},
		{"24:00", Time{24, 0}},
	}

	for _, tt := range tests {
		got, err := ParseTime(tt.in)
		if err != nil {
			t.Fatalf("ParseTime(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTime(%q) = %+v, expected %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseTimeMalformed(t *testing.T) {
	for _, in := range []string{"", "ab:00", "7:xx", "24:30", "25:00", "7:60"} {
		if _, err := ParseTime(in); !errors.Is(err, ErrMalformedTime) {
			t.Errorf("ParseTime(%q) expected ErrMalformedTime, got %v", in, err)
		}
	}
}

func TestEndOfDayOverlaps(t *testing.T) {
	late, err := ParseSchedule("Senin 22:00-24:00")
	if err != nil {
		t.Fatalf("ParseSchedule failed: %v", err)
	}
	evening, _ := ParseSchedule("Senin 23:00-23:30")
	if !late.Overlaps(evening) || !evening.Overlaps(late) {
		t.Errorf("expected %v and %v to overlap", late, evening)
	}
	if late.String() != "Senin 22:00-24:00" {
		t.Errorf("unexpected format %q", late.String())
	}
}

func TestParseTimeRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 5, 15, 30, 45, 59} {
			orig := Time{h, m}
			again, err := ParseTime(orig.String())
			if err != nil {
				t.Fatalf("reparse of %s failed: %v", orig, err)
			}
			if again != orig {
				t.Errorf("reparse of %s gave %+v", orig, again)
			}
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	got, err := NormalizeTime("7:5")
	if err != nil || got != "07:05" {
		t.Errorf("expected 07:05, got %q (%v)", got, err)
	}
	got, err = NormalizeTime("")
	if err != nil || got != "00:00" {
		t.Errorf("expected 00:00 for empty token, got %q (%v)", got, err)
	}
	if _, err := NormalizeTime("x"); err == nil {
		t.Errorf("expected error for malformed token")
	}
}

func mustSchedule(t *testing.T, s string) Schedule {
	t.Helper()
	sc, err := ParseSchedule(s)
	if err != nil {
		t.Fatalf("ParseSchedule(%q) failed: %v", s, err)
	}
	return sc
}

func TestScheduleOverlaps(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Senin 07:00-09:00", "Senin 08:00-10:00", true},
		{"Senin 07:00-09:00", "Senin 09:00-11:00", false},
		{"Senin 07:00-09:00", "Selasa 07:00-09:00", false},
		{"Senin 07:00-12:00", "Senin 08:00-09:00", true},
		{"Senin 07:00-09:00", "Senin 07:00-09:00", true},
		{"Senin 07:00-09:00", "senin 08:00-10:00", false},
		{"Senin 00:00-00:00", "Senin 00:00-00:00", false},
		{"Senin 07:00-07:00", "Senin 07:00-09:00", true},
		{"Senin 10:00-09:00", "Senin 07:00-08:00", false},
	}

	for _, tt := range tests {
		a, b := mustSchedule(t, tt.a), mustSchedule(t, tt.b)
		if got := a.Overlaps(b); got != tt.want {
			t.Errorf("%s vs %s: expected %v, got %v", tt.a, tt.b, tt.want, got)
		}
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Errorf("%s vs %s: overlap is not symmetric", tt.a, tt.b)
		}
	}
}

func TestParseScheduleMalformed(t *testing.T) {
	for _, in := range []string{"Senin", "Senin 07:00", "Senin x-09:00", ""} {
		if _, err := ParseSchedule(in); !errors.Is(err, ErrMalformedSchedule) {
			t.Errorf("ParseSchedule(%q) expected ErrMalformedSchedule, got %v", in, err)
		}
	}
}

func TestScheduleText(t *testing.T) {
	var s Schedule
	if err := s.UnmarshalText([]byte("Rabu 7:30-9")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	out, _ := s.MarshalText()
	if string(out) != "Rabu 07:30-09:00" {
		t.Errorf("expected normalized schedule, got %q", out)
	}
}
