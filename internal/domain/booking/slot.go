package booking

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// Slot is a validated (date, weekday, time) triple.
type Slot struct {
	Date string
	Day  time.Weekday
	Time string
}

// NewSlot validates the input. When day is nil it is derived from date;
// otherwise it must match the weekday of date.
func NewSlot(date string, day *int, at string) (Slot, error) {
	d, err := timezone.ParseDate(date)
	if err != nil {
		return Slot{}, httperr.ErrValidation("invalid_date", "Date must use YYYY-MM-DD.")
	}

	if _, err := timezone.ParseTimeOfDay(at); err != nil {
		return Slot{}, httperr.ErrValidation("invalid_time", "Time must use HH:MM.")
	}

	weekday := d.Weekday()
	if day != nil {
		if *day < int(time.Sunday) || *day > int(time.Saturday) {
			return Slot{}, httperr.ErrValidation("invalid_day", "Day must be between 0 (Sunday) and 6 (Saturday).")
		}
		if time.Weekday(*day) != weekday {
			return Slot{}, httperr.ErrValidation("day_mismatch", "Day does not match the weekday of date.")
		}
	}

	return Slot{
		Date: timezone.FormatDate(d),
		Day:  weekday,
		Time: at,
	}, nil
}
