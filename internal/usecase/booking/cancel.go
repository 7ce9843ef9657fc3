package booking

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type CancelBooking struct {
	deps Deps
}

func NewCancelBooking(d Deps) *CancelBooking {
	return &CancelBooking{deps: d}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	caller identity.CallerContext,
	bookingID uint,
) (*models.Booking, error) {

	if err := requireRole(caller, identity.RoleDoctor); err != nil {
		return nil, err
	}

	return uc.deps.run(ctx, "cancel", caller, func(tx domain.Repository) (*models.Booking, []domain.Effect, error) {
		b, err := tx.GetBookingForDoctor(ctx, bookingID, caller.ID)
		if err != nil {
			return nil, nil, bookingNotFound(err)
		}

		effects, err := domain.Cancel(b, doctorName(ctx, tx, caller))
		if err != nil {
			return nil, nil, err
		}

		if err := tx.UpdateBooking(ctx, b); err != nil {
			return nil, nil, err
		}
		return b, effects, nil
	})
}
