package booking

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// Queries are the read side of the engine. Every read is scoped to the
// caller: doctors see their own bookings, patients theirs.
type Queries struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewQueries(d Deps) *Queries {
	return &Queries{repo: d.Repo, clock: d.Clock}
}

type TodaySummary struct {
	Date      string           `json:"date"`
	Pending   []models.Booking `json:"pending"`
	Confirmed []models.Booking `json:"confirmed"`
	Completed []models.Booking `json:"completed"`
	Cancelled []models.Booking `json:"cancelled"`
}

type StatusCounts struct {
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Total     int64 `json:"total"`
}

// List returns the caller's bookings, newest first, optionally filtered by
// status.
func (q *Queries) List(
	ctx context.Context,
	caller identity.CallerContext,
	status string,
) ([]models.Booking, error) {

	query, err := scope(caller)
	if err != nil {
		return nil, err
	}

	if status != "" {
		st, ok := domain.ParseStatus(status)
		if !ok {
			return nil, httperr.ErrValidation("invalid_status", "Unknown booking status.")
		}
		query.Status = &st
	}

	return q.repo.ListBookings(ctx, query)
}

func (q *Queries) Get(
	ctx context.Context,
	caller identity.CallerContext,
	bookingID uint,
) (*models.Booking, error) {

	var (
		b   *models.Booking
		err error
	)

	switch {
	case caller.Is(identity.RoleDoctor):
		b, err = q.repo.GetBookingForDoctor(ctx, bookingID, caller.ID)
	case caller.Is(identity.RolePatient):
		b, err = q.repo.GetBookingForPatient(ctx, bookingID, caller.ID)
	default:
		return nil, httperr.ErrForbidden("forbidden_role", "Only doctors and patients can read bookings.")
	}

	if err != nil {
		return nil, bookingNotFound(err)
	}
	return b, nil
}

// GetByInspectionNumber looks up the doctor's visit by its queue number.
// An empty date means today in the clinic timezone.
func (q *Queries) GetByInspectionNumber(
	ctx context.Context,
	caller identity.CallerContext,
	number int,
	date string,
) (*models.Booking, error) {

	if err := requireRole(caller, identity.RoleDoctor); err != nil {
		return nil, err
	}
	if number < 1 {
		return nil, httperr.ErrValidation("invalid_inspection_number", "Inspection number must be positive.")
	}

	if date == "" {
		date = timezone.FormatDate(timezone.Today(q.clock))
	} else if _, err := timezone.ParseDate(date); err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Date must use YYYY-MM-DD.")
	}

	b, err := q.repo.FindByInspectionNumber(ctx, caller.ID, date, number)
	if err != nil {
		return nil, bookingNotFound(err)
	}
	return b, nil
}

// TodaySummary groups the doctor's bookings for today by status.
func (q *Queries) TodaySummary(
	ctx context.Context,
	caller identity.CallerContext,
) (*TodaySummary, error) {

	if err := requireRole(caller, identity.RoleDoctor); err != nil {
		return nil, err
	}

	today := timezone.FormatDate(timezone.Today(q.clock))
	doctorID := caller.ID

	bookings, err := q.repo.ListBookings(ctx, domain.Query{DoctorID: &doctorID, Date: today})
	if err != nil {
		return nil, err
	}

	out := &TodaySummary{
		Date:      today,
		Pending:   []models.Booking{},
		Confirmed: []models.Booking{},
		Completed: []models.Booking{},
		Cancelled: []models.Booking{},
	}
	for _, b := range bookings {
		switch domain.Status(b.Status) {
		case domain.StatusPending:
			out.Pending = append(out.Pending, b)
		case domain.StatusConfirmed:
			out.Confirmed = append(out.Confirmed, b)
		case domain.StatusCompleted:
			out.Completed = append(out.Completed, b)
		case domain.StatusCancelled:
			out.Cancelled = append(out.Cancelled, b)
		}
	}
	return out, nil
}

func (q *Queries) CountByStatus(
	ctx context.Context,
	caller identity.CallerContext,
) (*StatusCounts, error) {

	if err := requireRole(caller, identity.RoleDoctor); err != nil {
		return nil, err
	}

	counts, err := q.repo.CountByStatus(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	out := &StatusCounts{
		Pending:   counts[domain.StatusPending],
		Confirmed: counts[domain.StatusConfirmed],
		Completed: counts[domain.StatusCompleted],
		Cancelled: counts[domain.StatusCancelled],
	}
	out.Total = out.Pending + out.Confirmed + out.Completed + out.Cancelled
	return out, nil
}

func scope(caller identity.CallerContext) (domain.Query, error) {
	id := caller.ID

	switch {
	case caller.Is(identity.RoleDoctor):
		return domain.Query{DoctorID: &id}, nil
	case caller.Is(identity.RolePatient):
		return domain.Query{PatientID: &id}, nil
	}
	return domain.Query{}, httperr.ErrForbidden("forbidden_role", "Only doctors and patients can read bookings.")
}

