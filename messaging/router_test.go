package messaging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"chat-relay/domain"
	"chat-relay/mocks"
	"chat-relay/observability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router     *Router
	tracker    *Tracker
	directory  *mocks.MockDirectory
	visibility *mocks.MockVisibility
	presence   *mocks.MockPresence
	bus        *mocks.MockPublisher
	stats      *observability.RelayStats
}

func newRouterFixture(t *testing.T) routerFixture {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := NewTracker()
	directory := mocks.NewMockDirectory(ctrl)
	visibility := mocks.NewMockVisibility(ctrl)
	presence := mocks.NewMockPresence(ctrl)
	bus := mocks.NewMockPublisher(ctrl)
	stats := observability.NewRelayStats()

	router := NewRouter(logger, "alpha", NewCodec(), tracker, directory, visibility, presence, bus, stats)
	return routerFixture{
		router:     router,
		tracker:    tracker,
		directory:  directory,
		visibility: visibility,
		presence:   presence,
		bus:        bus,
		stats:      stats,
	}
}

func TestRouter_Route_Local_Delivery_Updates_Both_Reply_Targets(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	steve := domain.Player{ID: uuid.New(), Name: "Steve"}
	alex := domain.Player{ID: uuid.New(), Name: "Alex"}

	// Given Alex is resident and visible to Steve
	f.directory.EXPECT().PlayerByName("Alex").Return(alex, true)
	f.visibility.EXPECT().CanSee(steve, alex).Return(true)

	// When Steve messages Alex
	result := f.router.Route(context.Background(), steve, "Alex", "hello")

	// Then the message is delivered locally with both views rendered
	req.Equal(DeliveredLocal, result.Kind)
	req.Equal(alex, result.Recipient)
	req.Equal(SentView{RecipientName: "Alex", Text: "hello"}, result.Sent)
	req.Equal(ReceivedView{SenderName: "Steve", Text: "hello"}, result.Received)

	// And each party is the other's reply target
	target, ok := f.tracker.ReplyTarget(alex.ID)
	req.True(ok)
	req.Equal(steve.ID, *target.ID)
	target, ok = f.tracker.ReplyTarget(steve.ID)
	req.True(ok)
	req.Equal(alex.ID, *target.ID)
	target, ok = f.tracker.LastSent(steve.ID)
	req.True(ok)
	req.Equal(alex.ID, *target.ID)
}

func TestRouter_Route_Remote_Delivery_Publishes_One_Private_Message(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	steve := domain.Player{ID: uuid.New(), Name: "Steve"}

	// Given Alex is not resident here but exists on another instance
	f.directory.EXPECT().PlayerByName("Alex").Return(domain.Player{}, false)
	f.bus.EXPECT().Connected().Return(true)
	f.presence.EXPECT().ExistsAnywhere(gomock.Any(), "Alex").Return(true)

	var published string
	f.bus.EXPECT().
		Publish(gomock.Any(), PrivateChannel, gomock.Any()).
		Do(func(_ context.Context, _ string, payload string) {
			published = payload
		}).
		Times(1)

	// When Steve messages Alex
	result := f.router.Route(context.Background(), steve, "Alex", "hello")

	// Then exactly one PrivateMessage goes out on the private channel
	req.Equal(DeliveredRemote, result.Kind)
	req.Equal(SentView{RecipientName: "Alex", Text: "hello"}, result.Sent)

	var wire PrivateMessage
	req.NoError(json.Unmarshal([]byte(published), &wire))
	req.Equal("Steve", wire.SenderName)
	req.Equal("alpha", wire.SenderInstance)
	req.Equal("Alex", wire.RecipientName)
	req.Equal(steve.ID, *wire.SenderID)

	// And the sender's last-sent target is name-only
	target, ok := f.tracker.LastSent(steve.ID)
	req.True(ok)
	req.False(target.Local())
	req.Equal("Alex", target.Name)
}

func TestRouter_Route_Unknown_Recipient_Is_NotFound_And_Tracker_Unchanged(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	steve := domain.Player{ID: uuid.New(), Name: "Steve"}

	f.directory.EXPECT().PlayerByName("Nobody").Return(domain.Player{}, false)
	f.bus.EXPECT().Connected().Return(true)
	f.presence.EXPECT().ExistsAnywhere(gomock.Any(), "Nobody").Return(false)

	result := f.router.Route(context.Background(), steve, "Nobody", "hello")

	req.Equal(NotFound, result.Kind)
	_, ok := f.tracker.LastSent(steve.ID)
	req.False(ok)
	_, ok = f.tracker.ReplyTarget(steve.ID)
	req.False(ok)
}

func TestRouter_Route_Bus_Down_Degrades_To_NotFound(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	steve := domain.Player{ID: uuid.New(), Name: "Steve"}

	// Given no resident recipient and a disconnected bus
	f.directory.EXPECT().PlayerByName("Alex").Return(domain.Player{}, false)
	f.bus.EXPECT().Connected().Return(false)

	result := f.router.Route(context.Background(), steve, "Alex", "hello")

	// Then remote delivery silently behaves as not found
	req.Equal(NotFound, result.Kind)
}

func TestRouter_Route_Hidden_Recipient_Falls_Through_To_Remote_Path(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	steve := domain.Player{ID: uuid.New(), Name: "Steve"}
	alex := domain.Player{ID: uuid.New(), Name: "Alex"}

	// Given Alex is resident but vanished from Steve's view
	f.directory.EXPECT().PlayerByName("Alex").Return(alex, true)
	f.visibility.EXPECT().CanSee(steve, alex).Return(false)
	f.bus.EXPECT().Connected().Return(true)

	// And, being vanished, Alex is unregistered everywhere
	f.presence.EXPECT().ExistsAnywhere(gomock.Any(), "Alex").Return(false)

	result := f.router.Route(context.Background(), steve, "Alex", "hello")

	req.Equal(NotFound, result.Kind)
}

func TestRouter_HandleInbound_Resident_Recipient_Gets_Reply_Target(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	alex := domain.Player{ID: uuid.New(), Name: "Alex"}
	senderID := uuid.New()

	f.directory.EXPECT().PlayerByName("Alex").Return(alex, true)

	delivery, ok := f.router.HandleInbound(PrivateMessage{
		SenderID:       &senderID,
		SenderName:     "Steve",
		SenderInstance: "beta",
		RecipientName:  "Alex",
		Text:           "hello from beta",
	})

	req.True(ok)
	req.Equal(alex, delivery.Recipient)
	req.Equal(ReceivedView{SenderName: "Steve", Text: "hello from beta"}, delivery.Received)

	target, ok := f.tracker.ReplyTarget(alex.ID)
	req.True(ok)
	req.Equal(senderID, *target.ID)
	req.Equal("Steve", target.Name)
}

func TestRouter_HandleInbound_Departed_Recipient_Is_Dropped_Silently(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	// Given the recipient disconnected between publish and delivery
	f.directory.EXPECT().PlayerByName("Alex").Return(domain.Player{}, false)

	_, ok := f.router.HandleInbound(PrivateMessage{
		SenderName:    "Steve",
		RecipientName: "Alex",
		Text:          "too late",
	})

	req.False(ok)
}
