package notification

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/identity"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// Inbox is the receiver-side view of notifications. Only the receiver may
// read, mark or delete a notification.
type Inbox struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewInbox(repo domain.Repository, clock timezone.Clock) *Inbox {
	return &Inbox{repo: repo, clock: clock}
}

// ListMine returns the caller's notifications, newest first.
func (uc *Inbox) ListMine(
	ctx context.Context,
	caller identity.CallerContext,
	unreadOnly bool,
) ([]models.Notification, error) {

	if caller.ID == 0 {
		return nil, httperr.ErrForbidden("forbidden", "Authentication required.")
	}
	return uc.repo.ListNotifications(ctx, caller.ID, unreadOnly)
}

// MarkRead keeps the first read timestamp when called again.
func (uc *Inbox) MarkRead(
	ctx context.Context,
	caller identity.CallerContext,
	id uint,
) (*models.Notification, error) {

	n, err := uc.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if n.IsRead {
		return n, nil
	}

	now := uc.clock.Now()
	n.IsRead = true
	n.DateRead = &now

	if err := uc.repo.UpdateNotification(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (uc *Inbox) Delete(
	ctx context.Context,
	caller identity.CallerContext,
	id uint,
) error {

	if _, err := uc.owned(ctx, caller, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteNotification(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}

func (uc *Inbox) owned(
	ctx context.Context,
	caller identity.CallerContext,
	id uint,
) (*models.Notification, error) {

	n, err := uc.repo.GetNotification(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if caller.ID == 0 || n.ReceiverID != caller.ID {
		return nil, httperr.ErrForbidden("notification_not_owned", "Notification belongs to another user.")
	}
	return n, nil
}

func notFound(err error) error {
	if errors.Is(err, booking.ErrRecordNotFound) {
		return httperr.ErrNotFound("notification_not_found", "Notification not found.")
	}
	return err
}
