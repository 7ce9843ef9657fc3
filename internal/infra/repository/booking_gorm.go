package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type BookingGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx booking.Repository) error,
) error {

	if r.inTx {
		return fn(r)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx, inTx: true})
	})
	return translateError(err)
}

// locked adds FOR UPDATE inside a transaction.
func (r *BookingGormRepository) locked(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *BookingGormRepository) GetDoctor(
	ctx context.Context,
	doctorID uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", doctorID).
		First(&doctor).Error; err != nil {
		return nil, translateError(err)
	}
	return &doctor, nil
}

func (r *BookingGormRepository) GetPatient(
	ctx context.Context,
	patientID uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", patientID).
		First(&patient).Error; err != nil {
		return nil, translateError(err)
	}
	return &patient, nil
}

// --------------------------------------------------
// Notification
// --------------------------------------------------

func (r *BookingGormRepository) CreateNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(n).Error)
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error)
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error)
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	bookingID uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Booking{}, bookingID)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return booking.ErrRecordNotFound
	}
	return nil
}

func (r *BookingGormRepository) GetBookingForDoctor(
	ctx context.Context,
	bookingID uint,
	doctorID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.locked(ctx).
		Where("id = ? AND doctor_id = ?", bookingID, doctorID).
		First(&b).Error; err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForPatient(
	ctx context.Context,
	bookingID uint,
	patientID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.locked(ctx).
		Where("id = ? AND patient_id = ?", bookingID, patientID).
		First(&b).Error; err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) MaxInspectionNumber(
	ctx context.Context,
	doctorID uint,
	date string,
) (int, error) {

	var highest int
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("COALESCE(MAX(inspection_number), 0)").
		Where("doctor_id = ? AND date = ? AND inspection_number IS NOT NULL", doctorID, date).
		Scan(&highest).Error; err != nil {
		return 0, translateError(err)
	}
	return highest, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) FindByInspectionNumber(
	ctx context.Context,
	doctorID uint,
	date string,
	number int,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND date = ? AND inspection_number = ?", doctorID, date, number).
		First(&b).Error; err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	q booking.Query,
) ([]models.Booking, error) {

	tx := r.db.WithContext(ctx).Model(&models.Booking{})

	if q.DoctorID != nil {
		tx = tx.Where("doctor_id = ?", *q.DoctorID)
	}
	if q.PatientID != nil {
		tx = tx.Where("patient_id = ?", *q.PatientID)
	}
	if q.Status != nil {
		tx = tx.Where("status = ?", string(*q.Status))
	}
	if q.Date != "" {
		tx = tx.Where("date = ?", q.Date)
	}

	var out []models.Booking
	if err := tx.
		Order("date DESC").
		Order("time DESC").
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func (r *BookingGormRepository) CountByStatus(
	ctx context.Context,
	doctorID uint,
) (map[booking.Status]int64, error) {

	var rows []struct {
		Status string
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS total").
		Where("doctor_id = ?", doctorID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	out := make(map[booking.Status]int64, len(booking.AllStatuses))
	for _, s := range booking.AllStatuses {
		out[s] = 0
	}
	for _, row := range rows {
		out[booking.Status(row.Status)] = row.Total
	}
	return out, nil
}

// Compile-time check
var _ booking.Repository = (*BookingGormRepository)(nil)
