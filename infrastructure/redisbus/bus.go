package redisbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	apperrors "chat-relay/errors"
	"chat-relay/observability"

	"github.com/redis/go-redis/v9"
)

// State is the observable bus connection state. Callers gate publish
// attempts on it; nothing reconnects on their behalf beyond what the
// client itself retries.
type State int32

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Inbound is one raw message lifted off the transport. Decoding and any
// touch of player-facing state happen on the inbox context, never here.
type Inbound struct {
	Channel string
	Payload string
}

const receiveRetryDelay = 500 * time.Millisecond

// Bus owns the pub/sub connection shared by all instances. Inbound
// messages land in a bounded channel drained by a single consumer; when
// the consumer lags, messages are dropped and counted rather than
// blocking the receive loop.
type Bus struct {
	log      *slog.Logger
	client   *redis.Client
	channels []string
	inbound  chan Inbound
	stats    *observability.RelayStats
	state    atomic.Int32

	mu     sync.Mutex
	pubsub *redis.PubSub
	cancel context.CancelFunc
}

func New(log *slog.Logger, uri string, bufferSize int, stats *observability.RelayStats, channels ...string) (*Bus, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("bus uri: %w", err)
	}

	b := &Bus{
		log:      log,
		channels: channels,
		inbound:  make(chan Inbound, bufferSize),
		stats:    stats,
	}

	// Fires for every connection the client (re)establishes, including the
	// pub/sub one, so a recovered transport flips the state back on its own.
	opts.OnConnect = func(ctx context.Context, cn *redis.Conn) error {
		if State(b.state.Swap(int32(Connected))) != Connected {
			log.Info("Bus connection established", "addr", opts.Addr)
		}
		return nil
	}

	b.client = redis.NewClient(opts)
	return b, nil
}

// Connect moves the bus out of Disconnected and establishes the channel
// subscriptions. On failure the state rolls back to Disconnected and the
// caller decides whether to retry; local-only operation stays available
// either way.
func (b *Bus) Connect(ctx context.Context) error {
	if !b.state.CompareAndSwap(int32(Disconnected), int32(Connecting)) {
		return apperrors.ErrBusAlreadyStarted
	}

	if err := b.client.Ping(ctx).Err(); err != nil {
		b.state.Store(int32(Disconnected))
		return fmt.Errorf("bus connect: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	b.mu.Lock()
	b.pubsub = b.client.Subscribe(loopCtx, b.channels...)
	b.cancel = cancel
	b.mu.Unlock()

	go b.receiveLoop(loopCtx, b.pubsub)
	return nil
}

// receiveLoop ferries raw payloads into the bounded inbound channel. A
// receive error flips the state to Disconnected exactly once, no matter
// how many times the transport reports it.
func (b *Bus) receiveLoop(ctx context.Context, ps *redis.PubSub) {
	for {
		msg, err := ps.ReceiveMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if State(b.state.Swap(int32(Disconnected))) == Connected {
				b.log.Warn("Bus connection lost", "err", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(receiveRetryDelay):
			}
			continue
		}

		select {
		case b.inbound <- Inbound{Channel: msg.Channel, Payload: msg.Payload}:
		default:
			b.stats.InboundDropped.Add(1)
			b.log.Warn("Inbound channel full, dropping message", "channel", msg.Channel)
		}
	}
}

// Publish is fire and forget: a no-op unless Connected, and a publish
// error costs one message, nothing more.
func (b *Bus) Publish(ctx context.Context, channel, payload string) {
	if b.State() != Connected {
		return
	}
	if err := b.client.Publish(ctx, channel, payload).Err(); err != nil {
		b.log.Warn("Publish failed", "channel", channel, "err", err)
		return
	}
	b.stats.Published.Add(1)
}

func (b *Bus) Connected() bool {
	return b.State() == Connected
}

func (b *Bus) State() State {
	return State(b.state.Load())
}

// Inbound exposes the bounded channel the inbox worker drains.
func (b *Bus) Inbound() <-chan Inbound {
	return b.inbound
}

// Client exposes the underlying connection for the presence registry,
// which shares it instead of opening a second one.
func (b *Bus) Client() *redis.Client {
	return b.client
}

// Close stops the receive loop and tears the client down. Call it last
// during shutdown, after presence cleanup has run.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.Store(int32(Disconnected))
	if b.cancel != nil {
		b.cancel()
	}
	if b.pubsub != nil {
		_ = b.pubsub.Close()
	}
	return b.client.Close()
}
