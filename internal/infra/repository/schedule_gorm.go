package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) ListSchedules(
	ctx context.Context,
	doctorID uint,
) ([]models.Schedule, error) {

	var out []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("day ASC").
		Order("start_time ASC").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func (r *ScheduleGormRepository) GetSchedule(
	ctx context.Context,
	id uint,
) (*models.Schedule, error) {

	var s models.Schedule
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

func (r *ScheduleGormRepository) CreateSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error)
}

func (r *ScheduleGormRepository) UpdateSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error)
}

func (r *ScheduleGormRepository) DeleteSchedule(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Schedule{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return booking.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
