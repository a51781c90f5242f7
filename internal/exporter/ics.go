package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"
	_ "time/tzdata"

	ics "github.com/arran4/golang-ical"
	"github.com/rhyrak/krsplan/pkg/model"
)

var weekdays = map[string]time.Weekday{
	"minggu":    time.Sunday,
	"senin":     time.Monday,
	"selasa":    time.Tuesday,
	"rabu":      time.Wednesday,
	"kamis":     time.Thursday,
	"jumat":     time.Friday,
	"jum'at":    time.Friday,
	"sabtu":     time.Saturday,
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Options controls how weekly meetings are placed on the calendar.
type Options struct {
	// Start is the first day of the semester. Each meeting begins on the
	// first matching weekday on or after it.
	Start time.Time
	Weeks int
	Now   time.Time
}

// GenerateICS writes one weekly recurring event per meeting of the selected
// classes. Meetings with an unknown day or unreadable times are skipped.
func GenerateICS(selections []model.Selection, opts Options, w io.Writer) error {
	if opts.Weeks <= 0 {
		return fmt.Errorf("weeks must be positive, got %d", opts.Weeks)
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	loc := opts.Start.Location()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, sel := range selections {
		for i, m := range sel.Class.Meetings {
			day, ok := weekdays[strings.ToLower(m.Day)]
			if !ok {
				continue
			}
			schedule, err := m.Schedule()
			if err != nil {
				continue
			}

			first := opts.Start.AddDate(0, 0, (int(day)-int(opts.Start.Weekday())+7)%7)
			y, mo, d := first.Date()
			startAt := time.Date(y, mo, d, schedule.Interval.Start.Hour, schedule.Interval.Start.Minute, 0, 0, loc)
			endAt := time.Date(y, mo, d, schedule.Interval.End.Hour, schedule.Interval.End.Minute, 0, 0, loc)

			event := cal.AddEvent(fmt.Sprintf("%s-%d@krsplan", sel.Class.ClassID, i))
			event.SetCreatedTime(opts.Now)
			event.SetDtStampTime(opts.Now)
			event.SetModifiedAt(opts.Now)
			event.SetStartAt(startAt)
			event.SetEndAt(endAt)
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", opts.Weeks))
			event.SetSummary(fmt.Sprintf("%s %s (%s)", sel.Subject.Code, sel.Subject.Name, sel.Class.ClassName))
			event.SetLocation(m.Room)

			description := fmt.Sprintf("Credits: %d", sel.Subject.Credits)
			if len(sel.Class.Lecturers) > 0 {
				description += "\nLecturers: " + strings.Join(sel.Class.Lecturers, ", ")
			}
			event.SetDescription(description)
		}
	}

	return cal.SerializeTo(w)
}
