package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/notify"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// Dispatcher hands committed notifications to delivery.
type Dispatcher interface {
	Dispatch(notifications ...models.Notification)
}

type Deps struct {
	Repo       domain.Repository
	Schedules  schedule.Repository
	Emitter    *notify.Emitter
	Dispatcher Dispatcher
	Clock      timezone.Clock
	Metrics    *metrics.Collector
	Logger     *zerolog.Logger

	// ConfirmMaxRetries bounds the extra attempts Confirm makes after an
	// inspection number conflict.
	ConfirmMaxRetries int
	EnforceSchedule   bool
}

// Engine groups the booking use cases for the HTTP layer.
type Engine struct {
	Create        *CreateBooking
	Confirm       *ConfirmBooking
	Cancel        *CancelBooking
	Complete      *CompleteBooking
	PatientUpdate *PatientUpdateBooking
	PatientDelete *PatientDeleteBooking
	Queries       *Queries
}

func NewEngine(d Deps) *Engine {
	if d.Logger == nil {
		nop := zerolog.Nop()
		d.Logger = &nop
	}
	if d.Clock == nil {
		d.Clock = timezone.NewSystemClock(timezone.DefaultTimezone)
	}
	if d.Emitter == nil {
		d.Emitter = notify.NewEmitter(d.Clock)
	}

	return &Engine{
		Create:        NewCreateBooking(d),
		Confirm:       NewConfirmBooking(d),
		Cancel:        NewCancelBooking(d),
		Complete:      NewCompleteBooking(d),
		PatientUpdate: NewPatientUpdateBooking(d),
		PatientDelete: NewPatientDeleteBooking(d),
		Queries:       NewQueries(d),
	}
}

// mutation is one transactional step: it returns the booking it touched and
// the effects to record.
type mutation func(tx domain.Repository) (*models.Booking, []domain.Effect, error)

// run executes m in a transaction, records its effects in the same
// transaction and hands the notifications to delivery after commit.
func (d Deps) run(
	ctx context.Context,
	op string,
	caller identity.CallerContext,
	m mutation,
) (*models.Booking, error) {

	var (
		b       *models.Booking
		created []models.Notification
	)

	err := d.Repo.Transaction(ctx, func(tx domain.Repository) error {
		var (
			effects []domain.Effect
			err     error
		)
		b, effects, err = m(tx)
		if err != nil {
			return err
		}

		created, err = d.Emitter.Emit(ctx, tx, effects)
		return err
	})

	d.observe(op, caller, b, err)
	if err != nil {
		return nil, err
	}

	if d.Dispatcher != nil {
		d.Dispatcher.Dispatch(created...)
	}
	return b, nil
}

func (d Deps) observe(op string, caller identity.CallerContext, b *models.Booking, err error) {
	if errors.Is(err, domain.ErrConflict) {
		// retried by the caller, reported once the retries run out
		return
	}
	d.Metrics.ObserveBookingOp(op, err)

	if err == nil {
		ev := d.Logger.Info().Str("op", op).Uint("caller_id", caller.ID)
		if b != nil {
			ev = ev.Uint("booking_id", b.ID).Str("status", b.Status)
		}
		ev.Msg("booking operation applied")
		return
	}

	if _, ok := httperr.KindOf(err); ok {
		d.Logger.Debug().Err(err).Str("op", op).Uint("caller_id", caller.ID).Msg("booking operation rejected")
		return
	}
	d.Logger.Error().Err(err).Str("op", op).Uint("caller_id", caller.ID).Msg("booking operation failed")
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func requireRole(caller identity.CallerContext, role identity.Role) error {
	if !caller.Is(role) {
		return httperr.ErrForbidden("forbidden_role", fmt.Sprintf("Only %ss can perform this action.", role))
	}
	return nil
}

func bookingNotFound(err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return httperr.ErrNotFound("booking_not_found", "Booking not found.")
	}
	return err
}

func doctorNotFound(err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return httperr.ErrNotFound("doctor_not_found", "Doctor not found.")
	}
	return err
}

// doctorName prefers the name carried by the caller and falls back to the
// directory.
func doctorName(ctx context.Context, tx domain.Repository, caller identity.CallerContext) string {
	if caller.Name != "" {
		return caller.Name
	}
	if d, err := tx.GetDoctor(ctx, caller.ID); err == nil {
		return d.User.Name
	}
	return ""
}

func patientName(ctx context.Context, tx domain.Repository, caller identity.CallerContext) string {
	if caller.Name != "" {
		return caller.Name
	}
	if p, err := tx.GetPatient(ctx, caller.ID); err == nil {
		return p.User.Name
	}
	return ""
}

// checkAvailability enforces that the slot falls inside an available window
// when schedule enforcement is on.
func (d Deps) checkAvailability(ctx context.Context, doctorID uint, slot domain.Slot) error {
	if !d.EnforceSchedule || d.Schedules == nil {
		return nil
	}

	windows, err := d.Schedules.ListSchedules(ctx, doctorID)
	if err != nil {
		return err
	}
	if !schedule.Covers(windows, slot.Day, slot.Time) {
		return httperr.ErrValidation("outside_schedule", "The doctor is not available at that time.")
	}
	return nil
}
