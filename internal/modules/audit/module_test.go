package audit

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/sellerprofile/internal/events"
	"github.com/nfrund/sellerprofile/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards the log buffer written from subscriber goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAuditModule(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })

	var logs syncBuffer
	m := New(Dependencies{
		Subscriber: bus,
		Logger:     slog.New(slog.NewTextHandler(&logs, nil)),
	})
	require.NoError(t, m.Boot(context.Background(), nil, nil))
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, pubsub.Publish(ctx, bus, events.Viewed, "", events.ProfileViewed{ProfileID: "p-1", At: at}))
	require.NoError(t, pubsub.Publish(ctx, bus, events.FetchFailed, "", events.ProfileFetchFailed{
		Kind: "forbidden", Message: "Failed to fetch profile: 403", Redirected: true, At: at,
	}))
	require.NoError(t, pubsub.Publish(ctx, bus, events.LogoutDone, "", events.LoggedOut{At: at}))

	require.Eventually(t, func() bool { return m.Handled() == 3 }, 2*time.Second, 10*time.Millisecond)

	out := logs.String()
	assert.Contains(t, out, "profile viewed")
	assert.Contains(t, out, "profile_id=p-1")
	assert.Contains(t, out, "kind=forbidden")
	assert.Contains(t, out, "redirected=true")
	assert.Contains(t, out, "visitor logged out")
	assert.Contains(t, out, "component=audit")
}

func TestAuditModule_BadPayloadIsSkipped(t *testing.T) {
	m := New(Dependencies{Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))})

	err := m.handleViewed(context.Background(), pubsub.Message{Topic: events.Viewed.Name(), Payload: []byte("{")})
	assert.Error(t, err)
	assert.Zero(t, m.Handled())
}
