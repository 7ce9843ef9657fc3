package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) CreateNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(n).Error)
}

func (r *NotificationGormRepository) GetNotification(
	ctx context.Context,
	id uint,
) (*models.Notification, error) {

	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &n, nil
}

func (r *NotificationGormRepository) ListNotifications(
	ctx context.Context,
	receiverID uint,
	unreadOnly bool,
) ([]models.Notification, error) {

	q := r.db.WithContext(ctx).Where("receiver_id = ?", receiverID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var out []models.Notification
	if err := q.
		Order("date DESC").
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func (r *NotificationGormRepository) UpdateNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(n).Error)
}

func (r *NotificationGormRepository) DeleteNotification(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Notification{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return booking.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ notification.Repository = (*NotificationGormRepository)(nil)
