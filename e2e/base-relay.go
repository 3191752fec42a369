package e2e

import (
	"context"
	"time"

	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/infrastructure/redisbus"
	"chat-relay/internal"
	"chat-relay/runtime"

	"github.com/alicebob/miniredis/v2"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// relayHarness bundles one running relay with its directory and a capturing
// sink, standing in for one game server embedding the relay.
type relayHarness struct {
	Instance  string
	Directory *domain.InMemoryDirectory
	Relay     *runtime.Relay
	Events    chan event.DomainEvent
	cancel    context.CancelFunc
	done      chan struct{}
}

// chanSink forwards every consumed event to a channel the scenario can
// assert on.
type chanSink struct {
	events chan event.DomainEvent
}

func (s *chanSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.events <- e
	return nil
}

// BaseRelaySuite starts a shared in-process Redis and two relay instances
// wired to it. Scenarios drive the host-facing API of one instance and
// observe deliveries on the other.
type BaseRelaySuite struct {
	suite.Suite
	Config Config
	redis  *miniredis.Miniredis
	Alpha  *relayHarness
	Beta   *relayHarness
}

func (s *BaseRelaySuite) SetupTest() {
	cfg, err := LoadConfig()
	s.Require().NoError(err)
	s.Config = cfg

	s.redis = miniredis.RunT(s.T())
	s.Alpha = s.startRelay("alpha")
	s.Beta = s.startRelay("beta")
}

func (s *BaseRelaySuite) TearDownTest() {
	for _, h := range []*relayHarness{s.Alpha, s.Beta} {
		h.cancel()
		select {
		case <-h.done:
		case <-time.After(s.Config.DeliveryTimeout):
			s.Fail("relay never stopped", "instance", h.Instance)
		}
		h.Relay.Shutdown(context.Background())
	}
}

func (s *BaseRelaySuite) startRelay(instance string) *relayHarness {
	log := logs.GetLoggerFromString(s.Config.LogLevel)
	directory := domain.NewInMemoryDirectory()

	relay, err := runtime.NewRelay(log, internal.Config{
		InstanceName:      instance,
		RedisURI:          "redis://" + s.redis.Addr(),
		PresenceTTL:       10 * time.Second,
		HeartbeatInterval: 200 * time.Millisecond,
		BufferSize:        64,
		LogLevel:          s.Config.LogLevel,
	}, directory, nil)
	s.Require().NoError(err)

	events := make(chan event.DomainEvent, 16)
	relay.RegisterSinks(&chanSink{events: events})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = relay.Start(ctx)
	}()

	s.Require().Eventually(func() bool {
		return relay.BusState() == redisbus.Connected
	}, s.Config.DeliveryTimeout, 20*time.Millisecond, "relay %s never connected", instance)

	return &relayHarness{
		Instance:  instance,
		Directory: directory,
		Relay:     relay,
		Events:    events,
		cancel:    cancel,
		done:      done,
	}
}

// WaitEvent blocks until the harness sink receives an event or the
// configured delivery timeout elapses.
func (s *BaseRelaySuite) WaitEvent(h *relayHarness) event.DomainEvent {
	select {
	case e := <-h.Events:
		return e
	case <-time.After(s.Config.DeliveryTimeout):
		s.Require().Fail("no event delivered", "instance", h.Instance)
		return nil
	}
}

// ExpectSilence asserts the harness sink stays empty for the given window.
func (s *BaseRelaySuite) ExpectSilence(h *relayHarness, window time.Duration) {
	select {
	case e := <-h.Events:
		s.Require().Fail("unexpected event", "instance %s got %s", h.Instance, e.EventName())
	case <-time.After(window):
	}
}
