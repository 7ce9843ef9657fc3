package booking

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type PatientUpdateInput struct {
	Date string
	Day  *int
	Time string
}

type PatientUpdateBooking struct {
	deps Deps
}

func NewPatientUpdateBooking(d Deps) *PatientUpdateBooking {
	return &PatientUpdateBooking{deps: d}
}

// Execute moves a pending booking to a new date and time.
func (uc *PatientUpdateBooking) Execute(
	ctx context.Context,
	caller identity.CallerContext,
	bookingID uint,
	in PatientUpdateInput,
) (*models.Booking, error) {

	if err := requireRole(caller, identity.RolePatient); err != nil {
		return nil, err
	}

	slot, err := domain.NewSlot(in.Date, in.Day, in.Time)
	if err != nil {
		return nil, err
	}

	// Schedules are read outside the transaction; the doctor of a booking
	// never changes.
	if uc.deps.EnforceSchedule {
		current, err := uc.deps.Repo.GetBookingForPatient(ctx, bookingID, caller.ID)
		if err != nil {
			return nil, bookingNotFound(err)
		}
		if err := domain.CanModify(domain.Status(current.Status)); err != nil {
			return nil, err
		}
		if err := uc.deps.checkAvailability(ctx, current.DoctorID, slot); err != nil {
			return nil, err
		}
	}

	return uc.deps.run(ctx, "patient_update", caller, func(tx domain.Repository) (*models.Booking, []domain.Effect, error) {
		b, err := tx.GetBookingForPatient(ctx, bookingID, caller.ID)
		if err != nil {
			return nil, nil, bookingNotFound(err)
		}

		effects, err := domain.Reschedule(b, slot, patientName(ctx, tx, caller))
		if err != nil {
			return nil, nil, err
		}

		if err := tx.UpdateBooking(ctx, b); err != nil {
			return nil, nil, err
		}
		return b, effects, nil
	})
}
