package pubsub_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nfrund/sellerprofile/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visit struct {
	ProfileID string `json:"profileId"`
}

var testVisitEvent = pubsub.NewEvent[visit]("test.visit", "Emitted by the pubsub tests.")

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan pubsub.Message, 1)
	require.NoError(t, bus.Subscribe(ctx, testVisitEvent.Name(), func(ctx context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, pubsub.Publish(ctx, bus, testVisitEvent, "seller-1", visit{ProfileID: "p-1"}))

	select {
	case msg := <-received:
		assert.Equal(t, "test.visit", msg.Topic)
		assert.Equal(t, "seller-1", msg.UserID)
		assert.NotEmpty(t, msg.Metadata["published_at"])

		payload, err := testVisitEvent.Decode(msg)
		require.NoError(t, err)
		assert.Equal(t, "p-1", payload.ProfileID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestWatermillBridge_HandlerErrorDoesNotRedeliver(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	require.NoError(t, bus.Subscribe(ctx, "test.failing", func(ctx context.Context, msg pubsub.Message) error {
		calls <- struct{}{}
		return errors.New("boom")
	}))

	require.NoError(t, bus.Publish(ctx, pubsub.Message{Topic: "test.failing", Payload: []byte(`{}`)}))

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("handler was never called")
	}
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, calls, "a failed message must not be redelivered")
}

func TestEvent_DecodeRejectsBadPayload(t *testing.T) {
	_, err := testVisitEvent.Decode(pubsub.Message{Payload: []byte("not json")})
	assert.Error(t, err)
}

func TestTopics(t *testing.T) {
	assert.Contains(t, pubsub.Topics(), "test.visit")
	assert.Panics(t, func() { pubsub.NewEvent[visit]("test.visit", "duplicate") })
}
