// Package vanish keeps the shared presence registry consistent with each
// player's effective visibility: a hidden player must not be reachable
// cross-instance, and showing them again restores reachability.
package vanish

import (
	"context"
	"log/slog"
	"time"

	"chat-relay/contract"
	"chat-relay/domain"

	"github.com/samber/lo"
)

// AlwaysVisible is the visibility used when no vanish extension is
// installed; every player stays reachable.
type AlwaysVisible struct{}

func (AlwaysVisible) CanSee(domain.Player, domain.Player) bool { return true }
func (AlwaysVisible) IsHidden(domain.Player) bool              { return false }

type Bridge struct {
	log        *slog.Logger
	presence   contract.Presence
	directory  contract.Directory
	visibility contract.Visibility
}

func NewBridge(log *slog.Logger, presence contract.Presence, directory contract.Directory, visibility contract.Visibility) *Bridge {
	return &Bridge{
		log:        log,
		presence:   presence,
		directory:  directory,
		visibility: visibility,
	}
}

// PlayerHidden handles a player vanishing: they drop out of the registry
// so no other instance can route to them.
func (b *Bridge) PlayerHidden(ctx context.Context, p domain.Player) {
	b.presence.Unregister(ctx, p.Name)
}

// PlayerShown restores a player to the registry when they unvanish.
func (b *Bridge) PlayerShown(ctx context.Context, p domain.Player) {
	b.presence.Register(ctx, p.Name)
}

// SyncAll reconciles every resident player against their current hidden
// state. Runs at startup, and again whenever a visibility extension that
// loaded after us may have flipped players without a notification we saw.
func (b *Bridge) SyncAll(ctx context.Context) {
	players := b.directory.OnlinePlayers()
	hidden, visible := lo.FilterReject(players, func(p domain.Player, _ int) bool {
		return b.visibility.IsHidden(p)
	})

	for _, p := range visible {
		b.presence.Register(ctx, p.Name)
	}
	for _, p := range hidden {
		b.presence.Unregister(ctx, p.Name)
	}
	b.log.Info("Presence registry reconciled", "visible", len(visible), "hidden", len(hidden))
}

// ScheduleResync runs SyncAll after delay, giving a late-loading
// visibility extension time to finish its own startup first. The returned
// timer lets the owner cancel a pending re-sync on shutdown.
func (b *Bridge) ScheduleResync(ctx context.Context, delay time.Duration) *time.Timer {
	return time.AfterFunc(delay, func() {
		if ctx.Err() != nil {
			return
		}
		b.SyncAll(ctx)
	})
}
