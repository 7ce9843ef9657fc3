package notification

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Type string

const (
	TypeAlert        Type = "alert"
	TypeConfirmation Type = "confirmation"
	TypeReminder     Type = "reminder"
	TypeWarning      Type = "warning"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeAlert, TypeConfirmation, TypeReminder, TypeWarning:
		return true
	}
	return false
}

// Writer appends notification records. Booking transactions implement it so
// notifications commit atomically with the transition that produced them.
type Writer interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
}

type Repository interface {
	Writer

	GetNotification(ctx context.Context, id uint) (*models.Notification, error)

	// ListNotifications returns the receiver's notifications, newest first.
	ListNotifications(ctx context.Context, receiverID uint, unreadOnly bool) ([]models.Notification, error)

	UpdateNotification(ctx context.Context, n *models.Notification) error

	DeleteNotification(ctx context.Context, id uint) error
}
