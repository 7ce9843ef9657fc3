package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type recordingWriter struct {
	created []models.Notification
	err     error
}

func (w *recordingWriter) CreateNotification(_ context.Context, n *models.Notification) error {
	if w.err != nil {
		return w.err
	}
	n.ID = uint(len(w.created) + 1)
	w.created = append(w.created, *n)
	return nil
}

func TestEmitterEmit(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	e := NewEmitter(timezone.FixedClock{At: now})
	w := &recordingWriter{}

	out, err := e.Emit(context.Background(), w, []booking.Effect{
		{ReceiverID: 7, Message: "hello", Type: notification.TypeAlert},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	n := out[0]
	assert.Equal(t, uint(1), n.ID)
	assert.Equal(t, uint(7), n.ReceiverID)
	assert.Equal(t, "hello", n.Message)
	assert.Equal(t, "alert", n.Type)
	assert.Equal(t, now, n.Date)
	assert.False(t, n.IsRead)
	assert.Nil(t, n.DateRead)
}

func TestEmitterPropagatesWriteErrors(t *testing.T) {
	e := NewEmitter(timezone.FixedClock{At: time.Now()})
	w := &recordingWriter{err: errors.New("disk full")}

	_, err := e.Emit(context.Background(), w, []booking.Effect{{ReceiverID: 1, Message: "x", Type: notification.TypeAlert}})
	assert.ErrorContains(t, err, "disk full")
}
