// Package runtime wires the relay together and owns its lifecycle. It
// orchestrates the components without containing routing or wire logic of
// its own.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/infrastructure/redisbus"
	"chat-relay/internal"
	"chat-relay/messaging"
	"chat-relay/observability"
	"chat-relay/runtime/workers"
	"chat-relay/vanish"

	"github.com/google/uuid"
)

// Relay is the host-facing facade: one per instance, holding the bus, the
// shared presence registry, the router, and the supervised workers. The
// host calls into it from its own single-threaded context; everything
// arriving from the transport is marshaled through the inbox worker before
// it can reach shared state.
type Relay struct {
	log        *slog.Logger
	cfg        internal.Config
	bus        *redisbus.Bus
	presence   *redisbus.Registry
	codec      *messaging.Codec
	tracker    *messaging.Tracker
	router     *messaging.Router
	bridge     *vanish.Bridge
	visibility contract.Visibility
	stats      *observability.RelayStats
	supervisor *workers.Supervisor
	sinks      []contract.EventSink

	mu     sync.Mutex
	resync *time.Timer
}

// NewRelay builds a relay from validated config. A nil visibility falls
// back to always-visible, keeping router and registry logic intact when no
// vanish extension is installed.
func NewRelay(log *slog.Logger, cfg internal.Config, directory contract.Directory, visibility contract.Visibility) (*Relay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if visibility == nil {
		visibility = vanish.AlwaysVisible{}
	}

	stats := observability.NewRelayStats()
	bus, err := redisbus.New(log, cfg.RedisURI, cfg.BufferSize, stats,
		messaging.ChatChannel, messaging.PrivateChannel)
	if err != nil {
		return nil, err
	}

	presence := redisbus.NewRegistry(log, bus, cfg.InstanceName)
	tracker := messaging.NewTracker()
	codec := messaging.NewCodec()
	router := messaging.NewRouter(log, cfg.InstanceName, codec, tracker,
		directory, visibility, presence, bus, stats)
	bridge := vanish.NewBridge(log, presence, directory, visibility)

	return &Relay{
		log:        log,
		cfg:        cfg,
		bus:        bus,
		presence:   presence,
		codec:      codec,
		tracker:    tracker,
		router:     router,
		bridge:     bridge,
		visibility: visibility,
		stats:      stats,
		supervisor: workers.NewSupervisor(log),
	}, nil
}

// RegisterSinks adds consumers for inbound events. Call before Start;
// sinks run on the inbox context and must not block.
func (r *Relay) RegisterSinks(sinks ...contract.EventSink) {
	r.sinks = append(r.sinks, sinks...)
}

// Start connects the bus, seeds the registry with currently resident
// players, launches the supervised workers, and blocks until ctx is
// canceled and every worker has exited. A failed bus connection is not
// fatal: the relay keeps serving local deliveries, with every registry
// operation degrading to a no-op.
func (r *Relay) Start(ctx context.Context) error {
	if err := r.bus.Connect(ctx); err != nil {
		r.log.Warn("Bus unreachable, relaying locally only", "err", err)
	} else {
		r.bridge.SyncAll(ctx)
	}

	inbox := workers.NewInboxWorker(r.log, r.cfg.InstanceName, r.codec, r.router,
		r.bus.Inbound(), r.sinks, r.stats)
	heartbeat := workers.NewHeartbeatWorker(r.log, r.presence, r.stats,
		r.cfg.HeartbeatInterval, r.cfg.PresenceTTL)

	r.supervisor.Add(inbox, heartbeat).Run(ctx)
	return nil
}

// Shutdown removes this instance's presence and closes the bus. Call only
// after Start has returned: a heartbeat firing after Cleanup would
// resurrect the deleted key and leave a ghost instance behind for a TTL.
func (r *Relay) Shutdown(ctx context.Context) {
	r.mu.Lock()
	if r.resync != nil {
		r.resync.Stop()
	}
	r.mu.Unlock()

	r.presence.Cleanup(ctx)
	if err := r.bus.Close(); err != nil {
		r.log.Warn("Bus close failed", "err", err)
	}
	r.log.Info("Relay shut down", "instance", r.cfg.InstanceName)
}

// SendPrivate routes a private message from a resident sender. The caller
// has already rejected empty text and self-targeting.
func (r *Relay) SendPrivate(ctx context.Context, sender domain.Player, recipientName, text string) messaging.RouteResult {
	return r.router.Route(ctx, sender, recipientName, text)
}

// BroadcastChat publishes a local chat line to every other instance.
// Remote instances render it; our own echo is filtered by the inbox.
func (r *Relay) BroadcastChat(ctx context.Context, sender domain.Player, text string) {
	payload, err := r.codec.EncodeChat(messaging.ChatMessage{
		SenderName:     sender.Name,
		SenderInstance: r.cfg.InstanceName,
		Text:           text,
	})
	if err != nil {
		r.log.Error("Failed to encode chat broadcast", "err", err)
		return
	}
	r.bus.Publish(ctx, messaging.ChatChannel, payload)
}

// PlayerJoined registers a resident unless a visibility extension already
// hides them; hidden players register when they unvanish.
func (r *Relay) PlayerJoined(ctx context.Context, p domain.Player) {
	if !r.visibility.IsHidden(p) {
		r.presence.Register(ctx, p.Name)
	}
}

// PlayerQuit unregisters the player and drops their conversational state.
func (r *Relay) PlayerQuit(ctx context.Context, p domain.Player) {
	r.presence.Unregister(ctx, p.Name)
	r.tracker.Clear(p.ID)
}

// ReplyTarget resolves whom a /reply from this player would reach.
func (r *Relay) ReplyTarget(id uuid.UUID) (domain.TargetInfo, bool) {
	return r.tracker.ReplyTarget(id)
}

// LastSentTarget resolves whom a /last from this player would reach.
func (r *Relay) LastSentTarget(id uuid.UUID) (domain.TargetInfo, bool) {
	return r.tracker.LastSent(id)
}

// VisibilityExtensionReady schedules a deferred registry re-sync after a
// visibility extension finishes loading; it may have flipped players
// without a notification this relay has seen.
func (r *Relay) VisibilityExtensionReady(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resync != nil {
		r.resync.Stop()
	}
	r.resync = r.bridge.ScheduleResync(ctx, r.cfg.ResyncDelay())
}

// Vanish exposes the bridge for hosts relaying hide/show notifications.
func (r *Relay) Vanish() *vanish.Bridge {
	return r.bridge
}

// BusState reports the observable bus connection state.
func (r *Relay) BusState() redisbus.State {
	return r.bus.State()
}

// Stats returns a snapshot of the relay counters.
func (r *Relay) Stats() observability.StatsSnapshot {
	return r.stats.Snapshot()
}
