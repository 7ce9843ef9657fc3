package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// DoctorLookup resolves doctor existence for the public availability read.
type DoctorLookup interface {
	GetDoctor(ctx context.Context, doctorID uint) (*models.Doctor, error)
}

type Input struct {
	Day       int
	StartTime string
	EndTime   string
	// IsAvailable defaults to true when nil.
	IsAvailable *bool
}

func (in Input) window() domain.Window {
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	return domain.Window{
		Day:         time.Weekday(in.Day),
		Start:       in.StartTime,
		End:         in.EndTime,
		IsAvailable: available,
	}
}

// ======================================================
// LIST
// ======================================================

type ListSchedules struct {
	repo    domain.Repository
	doctors DoctorLookup
}

func NewListSchedules(repo domain.Repository, doctors DoctorLookup) *ListSchedules {
	return &ListSchedules{repo: repo, doctors: doctors}
}

// Execute returns a doctor's weekly windows ordered by day and start time.
func (uc *ListSchedules) Execute(ctx context.Context, doctorID uint) ([]models.Schedule, error) {
	if _, err := uc.doctors.GetDoctor(ctx, doctorID); err != nil {
		if errors.Is(err, booking.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("doctor_not_found", "Doctor not found.")
		}
		return nil, err
	}
	return uc.repo.ListSchedules(ctx, doctorID)
}

// ======================================================
// CREATE
// ======================================================

type CreateSchedule struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewCreateSchedule(repo domain.Repository, logger *zerolog.Logger) *CreateSchedule {
	return &CreateSchedule{repo: repo, logger: logger}
}

func (uc *CreateSchedule) Execute(
	ctx context.Context,
	caller identity.CallerContext,
	in Input,
) (*models.Schedule, error) {

	if !caller.Is(identity.RoleDoctor) {
		return nil, httperr.ErrForbidden("forbidden_role", "Only doctors can manage schedules.")
	}

	w := in.window()
	if err := domain.ValidateWindow(w); err != nil {
		return nil, err
	}

	s := &models.Schedule{
		DoctorID:    caller.ID,
		Day:         int(w.Day),
		StartTime:   w.Start,
		EndTime:     w.End,
		IsAvailable: w.IsAvailable,
	}
	if err := uc.repo.CreateSchedule(ctx, s); err != nil {
		if errors.Is(err, booking.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("doctor_not_found", "Doctor not found.")
		}
		return nil, err
	}

	uc.logger.Info().Uint("schedule_id", s.ID).Uint("doctor_id", caller.ID).Msg("schedule created")
	return s, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateSchedule struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewUpdateSchedule(repo domain.Repository, logger *zerolog.Logger) *UpdateSchedule {
	return &UpdateSchedule{repo: repo, logger: logger}
}

func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	caller identity.CallerContext,
	scheduleID uint,
	in Input,
) (*models.Schedule, error) {

	s, err := owned(ctx, uc.repo, caller, scheduleID)
	if err != nil {
		return nil, err
	}

	w := in.window()
	if err := domain.ValidateWindow(w); err != nil {
		return nil, err
	}

	s.Day = int(w.Day)
	s.StartTime = w.Start
	s.EndTime = w.End
	s.IsAvailable = w.IsAvailable

	if err := uc.repo.UpdateSchedule(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info().Uint("schedule_id", s.ID).Uint("doctor_id", caller.ID).Msg("schedule updated")
	return s, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteSchedule struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewDeleteSchedule(repo domain.Repository, logger *zerolog.Logger) *DeleteSchedule {
	return &DeleteSchedule{repo: repo, logger: logger}
}

func (uc *DeleteSchedule) Execute(
	ctx context.Context,
	caller identity.CallerContext,
	scheduleID uint,
) error {

	if _, err := owned(ctx, uc.repo, caller, scheduleID); err != nil {
		return err
	}

	if err := uc.repo.DeleteSchedule(ctx, scheduleID); err != nil {
		return notFound(err)
	}

	uc.logger.Info().Uint("schedule_id", scheduleID).Uint("doctor_id", caller.ID).Msg("schedule deleted")
	return nil
}

// owned loads a schedule and checks it belongs to the calling doctor.
func owned(
	ctx context.Context,
	repo domain.Repository,
	caller identity.CallerContext,
	scheduleID uint,
) (*models.Schedule, error) {

	if !caller.Is(identity.RoleDoctor) {
		return nil, httperr.ErrForbidden("forbidden_role", "Only doctors can manage schedules.")
	}

	s, err := repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, notFound(err)
	}
	if s.DoctorID != caller.ID {
		return nil, httperr.ErrForbidden("schedule_not_owned", "Schedule belongs to another doctor.")
	}
	return s, nil
}

func notFound(err error) error {
	if errors.Is(err, booking.ErrRecordNotFound) {
		return httperr.ErrNotFound("schedule_not_found", "Schedule not found.")
	}
	return err
}
