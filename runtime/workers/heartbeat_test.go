package workers

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"chat-relay/mocks"
	"chat-relay/observability"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHeartbeatWorker_Refreshes_Immediately_And_On_Every_Tick(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	presence := mocks.NewMockPresence(ctrl)

	var refreshes atomic.Int32
	presence.EXPECT().
		RefreshHeartbeat(gomock.Any(), 200*time.Millisecond).
		Do(func(context.Context, time.Duration) { refreshes.Add(1) }).
		AnyTimes()

	worker := NewHeartbeatWorker(testLogger(), presence, observability.NewRelayStats(),
		20*time.Millisecond, 200*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := worker.Run(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)

	// One immediate refresh plus several ticker-driven ones
	req.GreaterOrEqual(refreshes.Load(), int32(3))
}

func TestHeartbeatWorker_Stops_When_Context_Is_Canceled(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	presence := mocks.NewMockPresence(ctrl)

	presence.EXPECT().RefreshHeartbeat(gomock.Any(), gomock.Any()).AnyTimes()

	worker := NewHeartbeatWorker(testLogger(), presence, observability.NewRelayStats(),
		10*time.Millisecond, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(2 * time.Second):
		req.Fail("heartbeat never stopped")
	}
}
