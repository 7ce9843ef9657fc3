package booking

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ConfirmBooking struct {
	deps Deps
}

func NewConfirmBooking(d Deps) *ConfirmBooking {
	return &ConfirmBooking{deps: d}
}

// Execute confirms a pending booking and gives it the next inspection number
// for its doctor and date. Losing the race for a number is retried.
func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	caller identity.CallerContext,
	bookingID uint,
) (*models.Booking, error) {

	if err := requireRole(caller, identity.RoleDoctor); err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		b, err := uc.attempt(ctx, caller, bookingID)
		if !errors.Is(err, domain.ErrConflict) {
			return b, err
		}

		if attempt >= uc.deps.ConfirmMaxRetries {
			err = httperr.ErrTransient("inspection_number_conflict", "Could not assign an inspection number, please retry.")
			uc.deps.Metrics.ObserveBookingOp("confirm", err)
			uc.deps.Logger.Warn().
				Uint("booking_id", bookingID).
				Int("attempts", attempt+1).
				Msg("inspection number retries exhausted")
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		uc.deps.Metrics.IncInspectionRetry()
		uc.deps.Logger.Debug().
			Uint("booking_id", bookingID).
			Int("attempt", attempt+1).
			Msg("inspection number conflict, retrying")
	}
}

func (uc *ConfirmBooking) attempt(
	ctx context.Context,
	caller identity.CallerContext,
	bookingID uint,
) (*models.Booking, error) {

	return uc.deps.run(ctx, "confirm", caller, func(tx domain.Repository) (*models.Booking, []domain.Effect, error) {
		b, err := tx.GetBookingForDoctor(ctx, bookingID, caller.ID)
		if err != nil {
			return nil, nil, bookingNotFound(err)
		}

		// reject before reading the sequence
		if err := domain.Transition(domain.Status(b.Status), domain.StatusConfirmed); err != nil {
			return nil, nil, err
		}

		highest, err := tx.MaxInspectionNumber(ctx, b.DoctorID, b.Date)
		if err != nil {
			return nil, nil, err
		}

		effects, err := domain.Confirm(b, highest+1, doctorName(ctx, tx, caller))
		if err != nil {
			return nil, nil, err
		}

		if err := tx.UpdateBooking(ctx, b); err != nil {
			return nil, nil, err
		}
		return b, effects, nil
	})
}
