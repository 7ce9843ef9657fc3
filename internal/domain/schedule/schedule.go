package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type Repository interface {
	// ListSchedules returns a doctor's windows ordered by day then start time.
	ListSchedules(ctx context.Context, doctorID uint) ([]models.Schedule, error)

	GetSchedule(ctx context.Context, id uint) (*models.Schedule, error)

	CreateSchedule(ctx context.Context, s *models.Schedule) error

	UpdateSchedule(ctx context.Context, s *models.Schedule) error

	DeleteSchedule(ctx context.Context, id uint) error
}

// Window is a validated weekly availability window.
type Window struct {
	Day         time.Weekday
	Start       string
	End         string
	IsAvailable bool
}

func ValidateWindow(w Window) error {
	if w.Day < time.Sunday || w.Day > time.Saturday {
		return httperr.ErrValidation("invalid_day", "Day must be between 0 (Sunday) and 6 (Saturday).")
	}

	start, err := timezone.ParseTimeOfDay(w.Start)
	if err != nil {
		return httperr.ErrValidation("invalid_start_time", "Start time must use HH:MM.")
	}
	end, err := timezone.ParseTimeOfDay(w.End)
	if err != nil {
		return httperr.ErrValidation("invalid_end_time", "End time must use HH:MM.")
	}
	if start >= end {
		return httperr.ErrValidation("invalid_time_range", "Start time must be before end time.")
	}
	return nil
}

// Covers reports whether an available window contains the given weekday and
// time of day. The window end is exclusive.
func Covers(windows []models.Schedule, day time.Weekday, at string) bool {
	minute, err := timezone.ParseTimeOfDay(at)
	if err != nil {
		return false
	}

	for _, w := range windows {
		if !w.IsAvailable || time.Weekday(w.Day) != day {
			continue
		}
		start, err1 := timezone.ParseTimeOfDay(w.StartTime)
		end, err2 := timezone.ParseTimeOfDay(w.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if minute >= start && minute < end {
			return true
		}
	}
	return false
}
