package booking

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Query filters booking reads. Nil/empty fields are ignored.
type Query struct {
	DoctorID  *uint
	PatientID *uint
	Status    *Status
	Date      string
}

type Repository interface {
	// Transaction runs fn against a transactional view of the store.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Notification (same transaction) --------
	notification.Writer

	// -------- Directory --------
	GetDoctor(ctx context.Context, doctorID uint) (*models.Doctor, error)
	GetPatient(ctx context.Context, patientID uint) (*models.Patient, error)

	// -------- Booking (write) --------
	CreateBooking(ctx context.Context, b *models.Booking) error
	UpdateBooking(ctx context.Context, b *models.Booking) error
	DeleteBooking(ctx context.Context, bookingID uint) error

	// GetBookingForDoctor and GetBookingForPatient are ownership scoped and
	// lock the row when called inside Transaction.
	GetBookingForDoctor(ctx context.Context, bookingID, doctorID uint) (*models.Booking, error)
	GetBookingForPatient(ctx context.Context, bookingID, patientID uint) (*models.Booking, error)

	// MaxInspectionNumber is the highest number already handed out for the
	// doctor on that date, 0 when none.
	MaxInspectionNumber(ctx context.Context, doctorID uint, date string) (int, error)

	// -------- Booking (read) --------
	FindByInspectionNumber(ctx context.Context, doctorID uint, date string, number int) (*models.Booking, error)

	// ListBookings orders by date, time and id, all descending.
	ListBookings(ctx context.Context, q Query) ([]models.Booking, error)

	CountByStatus(ctx context.Context, doctorID uint) (map[Status]int64, error)
}
