//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
)

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives relay events on the inbox context. Rendering and
// escaping are the sink owner's job; events carry raw text fields only.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// Directory answers residency questions for the local instance. Supplied by
// the host environment.
type Directory interface {
	PlayerByName(name string) (domain.Player, bool)
	PlayerByID(id uuid.UUID) (domain.Player, bool)
	OnlinePlayers() []domain.Player
}

// Visibility is supplied by an optional vanish extension. Without one,
// vanish.AlwaysVisible keeps every player reachable.
type Visibility interface {
	CanSee(viewer, target domain.Player) bool
	IsHidden(target domain.Player) bool
}

// Presence is the shared, TTL-scoped record of which names are online on
// which instance. Every operation silently degrades to a no-op (or false)
// when the registry is unreachable.
type Presence interface {
	Register(ctx context.Context, name string)
	Unregister(ctx context.Context, name string)
	ExistsAnywhere(ctx context.Context, name string) bool
	RefreshHeartbeat(ctx context.Context, ttl time.Duration)
	Cleanup(ctx context.Context)
}

// Publisher is the outbound half of the bus: fire-and-forget, no delivery
// guarantee, no-op unless connected.
type Publisher interface {
	Publish(ctx context.Context, channel, payload string)
	Connected() bool
}
