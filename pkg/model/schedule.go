package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedTime     = errors.New("malformed time")
	ErrMalformedSchedule = errors.New("malformed schedule")
)

// Time is a wall clock time of day with minute precision.
type Time struct {
	Hour   int
	Minute int
}

// ParseTime reads "H:MM" or "H" tokens. A missing minute part means :00.
// 24:00 is accepted as the end of the day.
func ParseTime(token string) (Time, error) {
	token = strings.TrimSpace(token)
	hh, mm, found := strings.Cut(token, ":")
	if !found || strings.TrimSpace(mm) == "" {
		mm = "00"
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return Time{}, fmt.Errorf("%w: hour in %q", ErrMalformedTime, token)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return Time{}, fmt.Errorf("%w: minute in %q", ErrMalformedTime, token)
	}
	if hour == 24 && minute == 0 {
		return Time{Hour: 24}, nil
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("%w: %q out of range", ErrMalformedTime, token)
	}

	return Time{Hour: hour, Minute: minute}, nil
}

// InMinutes returns minutes elapsed since midnight.
func (t Time) InMinutes() int {
	return t.Hour*60 + t.Minute
}

// String formats the time as zero padded HH:MM.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// NormalizeTime rewrites a time token into HH:MM. Empty tokens become "00:00".
func NormalizeTime(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "00:00", nil
	}
	t, err := ParseTime(token)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

type Interval struct {
	Start Time
	End   Time
}

// Overlaps aligns both intervals on the earlier start and reports whether the
// later one starts strictly before the earlier one ends. Intervals that only
// touch at a boundary do not overlap, and a zero length interval never
// overlaps itself.
func (i Interval) Overlaps(other Interval) bool {
	first, second := i, other
	if second.Start.InMinutes() < first.Start.InMinutes() ||
		(second.Start.InMinutes() == first.Start.InMinutes() && second.length() > first.length()) {
		first, second = second, first
	}

	low := second.Start.InMinutes() - first.Start.InMinutes()
	high := first.End.InMinutes() - first.Start.InMinutes()
	return low < high
}

func (i Interval) length() int {
	return i.End.InMinutes() - i.Start.InMinutes()
}

func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// Schedule is one weekly meeting slot. Day labels are compared verbatim.
type Schedule struct {
	Day      string
	Interval Interval
}

// ParseSchedule reads "<day> <start>-<end>", e.g. "Senin 07:00-09:30".
func ParseSchedule(s string) (Schedule, error) {
	day, span, found := strings.Cut(strings.TrimSpace(s), " ")
	if !found {
		return Schedule{}, fmt.Errorf("%w: %q has no time range", ErrMalformedSchedule, s)
	}
	start, end, found := strings.Cut(strings.TrimSpace(span), "-")
	if !found {
		return Schedule{}, fmt.Errorf("%w: %q has no time range", ErrMalformedSchedule, s)
	}

	st, err := ParseTime(start)
	if err != nil {
		return Schedule{}, fmt.Errorf("%w: %w", ErrMalformedSchedule, err)
	}
	et, err := ParseTime(end)
	if err != nil {
		return Schedule{}, fmt.Errorf("%w: %w", ErrMalformedSchedule, err)
	}

	return Schedule{Day: day, Interval: Interval{Start: st, End: et}}, nil
}

// Overlaps is false for different days, otherwise the intervals decide.
func (s Schedule) Overlaps(other Schedule) bool {
	if s.Day != other.Day {
		return false
	}
	return s.Interval.Overlaps(other.Interval)
}

func (s Schedule) String() string {
	return s.Day + " " + s.Interval.String()
}

// MarshalCSV lets gocsv write a schedule as a single "<day> <start>-<end>" cell.
func (s Schedule) MarshalCSV() (string, error) {
	if s.Day == "" {
		return "", nil
	}
	return s.String(), nil
}

func (s *Schedule) UnmarshalCSV(cell string) error {
	if strings.TrimSpace(cell) == "" {
		*s = Schedule{}
		return nil
	}
	parsed, err := ParseSchedule(cell)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Schedule) MarshalText() ([]byte, error) {
	cell, err := s.MarshalCSV()
	return []byte(cell), err
}

func (s *Schedule) UnmarshalText(text []byte) error {
	return s.UnmarshalCSV(string(text))
}
