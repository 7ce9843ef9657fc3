package booking

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	DoctorID uint
	Date     string
	// Day is optional; when set it must match the weekday of Date.
	Day  *int
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	deps Deps
}

func NewCreateBooking(d Deps) *CreateBooking {
	return &CreateBooking{deps: d}
}

// Execute books a pending appointment for the calling patient.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	caller identity.CallerContext,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := requireRole(caller, identity.RolePatient); err != nil {
		return nil, err
	}

	slot, err := domain.NewSlot(in.Date, in.Day, in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Availability (read outside the transaction)
	// --------------------------------------------------
	if uc.deps.EnforceSchedule {
		if _, err := uc.deps.Repo.GetDoctor(ctx, in.DoctorID); err != nil {
			return nil, doctorNotFound(err)
		}
		if err := uc.deps.checkAvailability(ctx, in.DoctorID, slot); err != nil {
			return nil, err
		}
	}

	return uc.deps.run(ctx, "create", caller, func(tx domain.Repository) (*models.Booking, []domain.Effect, error) {

		// --------------------------------------------------
		// Doctor / patient
		// --------------------------------------------------
		doctor, err := tx.GetDoctor(ctx, in.DoctorID)
		if err != nil {
			return nil, nil, doctorNotFound(err)
		}

		patient, err := tx.GetPatient(ctx, caller.ID)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil, httperr.ErrNotFound("patient_not_found", "Patient profile not found.")
		}
		if err != nil {
			return nil, nil, err
		}

		// --------------------------------------------------
		// Booking
		// --------------------------------------------------
		name := caller.Name
		if name == "" {
			name = patient.User.Name
		}

		b, effects := domain.New(doctor, patient.UserID, name, slot)
		if err := tx.CreateBooking(ctx, b); err != nil {
			return nil, nil, err
		}

		return b, effects, nil
	})
}
