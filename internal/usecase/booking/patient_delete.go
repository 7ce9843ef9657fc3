package booking

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type PatientDeleteBooking struct {
	deps Deps
}

func NewPatientDeleteBooking(d Deps) *PatientDeleteBooking {
	return &PatientDeleteBooking{deps: d}
}

// Execute hard deletes a pending booking and returns the removed record.
func (uc *PatientDeleteBooking) Execute(
	ctx context.Context,
	caller identity.CallerContext,
	bookingID uint,
) (*models.Booking, error) {

	if err := requireRole(caller, identity.RolePatient); err != nil {
		return nil, err
	}

	return uc.deps.run(ctx, "patient_delete", caller, func(tx domain.Repository) (*models.Booking, []domain.Effect, error) {
		b, err := tx.GetBookingForPatient(ctx, bookingID, caller.ID)
		if err != nil {
			return nil, nil, bookingNotFound(err)
		}

		effects, err := domain.Withdraw(b, patientName(ctx, tx, caller))
		if err != nil {
			return nil, nil, err
		}

		if err := tx.DeleteBooking(ctx, b.ID); err != nil {
			return nil, nil, bookingNotFound(err)
		}
		return b, effects, nil
	})
}
