package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logging"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestRedisPublisher(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := NewRedisClient(&config.Config{RedisAddr: s.Addr()})
	defer client.Close()

	ctx := context.Background()
	pub := NewRedisPublisher(client, "notifications")
	assert.Equal(t, "notifications:42", pub.Channel(42))

	sub := client.Subscribe(ctx, pub.Channel(42))
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	n := models.Notification{ID: 5, ReceiverID: 42, Message: "confirmed", Type: "confirmation"}
	require.NoError(t, pub.Publish(ctx, n))

	select {
	case msg := <-sub.Channel():
		var got models.Notification
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, uint(5), got.ID)
		assert.Equal(t, "confirmed", got.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestRedisPublisherUnavailable(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	addr := s.Addr()
	s.Close()

	client := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1})
	defer client.Close()

	pub := NewRedisPublisher(client, "notifications")
	assert.Error(t, pub.Publish(context.Background(), models.Notification{ReceiverID: 1}))

	assert.Error(t, NewRedisPublisher(nil, "x").Publish(context.Background(), models.Notification{}))
}

func TestLogPublisher(t *testing.T) {
	assert.NoError(t, NewLogPublisher(logging.Nop()).Publish(context.Background(), models.Notification{ID: 1}))
}
