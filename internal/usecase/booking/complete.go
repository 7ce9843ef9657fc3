package booking

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type CompleteBookingInput struct {
	Diagnosis    string
	Prescription string
}

type CompleteBooking struct {
	deps Deps
}

func NewCompleteBooking(d Deps) *CompleteBooking {
	return &CompleteBooking{deps: d}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	caller identity.CallerContext,
	bookingID uint,
	in CompleteBookingInput,
) (*models.Booking, error) {

	if err := requireRole(caller, identity.RoleDoctor); err != nil {
		return nil, err
	}

	return uc.deps.run(ctx, "complete", caller, func(tx domain.Repository) (*models.Booking, []domain.Effect, error) {
		b, err := tx.GetBookingForDoctor(ctx, bookingID, caller.ID)
		if err != nil {
			return nil, nil, bookingNotFound(err)
		}

		effects, err := domain.Complete(b, in.Diagnosis, in.Prescription, doctorName(ctx, tx, caller))
		if err != nil {
			return nil, nil, err
		}

		if err := tx.UpdateBooking(ctx, b); err != nil {
			return nil, nil, err
		}
		return b, effects, nil
	})
}
