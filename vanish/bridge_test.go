package vanish

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chat-relay/domain"
	"chat-relay/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBridge_Hidden_Player_Is_Unregistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	presence := mocks.NewMockPresence(ctrl)
	steve := domain.Player{ID: uuid.New(), Name: "Steve"}

	presence.EXPECT().Unregister(gomock.Any(), "Steve")

	bridge := NewBridge(testLogger(), presence, mocks.NewMockDirectory(ctrl), AlwaysVisible{})
	bridge.PlayerHidden(context.Background(), steve)
}

func TestBridge_Shown_Player_Is_Registered(t *testing.T) {
	ctrl := gomock.NewController(t)
	presence := mocks.NewMockPresence(ctrl)
	steve := domain.Player{ID: uuid.New(), Name: "Steve"}

	presence.EXPECT().Register(gomock.Any(), "Steve")

	bridge := NewBridge(testLogger(), presence, mocks.NewMockDirectory(ctrl), AlwaysVisible{})
	bridge.PlayerShown(context.Background(), steve)
}

func TestBridge_SyncAll_Reconciles_Hidden_And_Visible_Players(t *testing.T) {
	ctrl := gomock.NewController(t)
	presence := mocks.NewMockPresence(ctrl)
	directory := mocks.NewMockDirectory(ctrl)
	visibility := mocks.NewMockVisibility(ctrl)
	steve := domain.Player{ID: uuid.New(), Name: "Steve"}
	alex := domain.Player{ID: uuid.New(), Name: "Alex"}

	// Given Steve is visible and Alex vanished behind our back
	directory.EXPECT().OnlinePlayers().Return([]domain.Player{steve, alex})
	visibility.EXPECT().IsHidden(steve).Return(false)
	visibility.EXPECT().IsHidden(alex).Return(true)

	// Then the registry converges on the effective visibility
	presence.EXPECT().Register(gomock.Any(), "Steve")
	presence.EXPECT().Unregister(gomock.Any(), "Alex")

	bridge := NewBridge(testLogger(), presence, directory, visibility)
	bridge.SyncAll(context.Background())
}

func TestBridge_ScheduleResync_Runs_SyncAll_After_Delay(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	presence := mocks.NewMockPresence(ctrl)
	directory := mocks.NewMockDirectory(ctrl)
	steve := domain.Player{ID: uuid.New(), Name: "Steve"}

	synced := make(chan struct{})
	directory.EXPECT().OnlinePlayers().Return([]domain.Player{steve})
	presence.EXPECT().
		Register(gomock.Any(), "Steve").
		Do(func(context.Context, string) { close(synced) })

	bridge := NewBridge(testLogger(), presence, directory, AlwaysVisible{})
	timer := bridge.ScheduleResync(context.Background(), 10*time.Millisecond)
	defer timer.Stop()

	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		req.Fail("re-sync never ran")
	}
}

func TestBridge_ScheduleResync_Skips_After_Shutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	presence := mocks.NewMockPresence(ctrl)
	directory := mocks.NewMockDirectory(ctrl)

	// No presence or directory calls are expected once ctx is gone
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bridge := NewBridge(testLogger(), presence, directory, AlwaysVisible{})
	timer := bridge.ScheduleResync(ctx, 5*time.Millisecond)
	defer timer.Stop()

	time.Sleep(50 * time.Millisecond)
}
