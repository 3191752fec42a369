package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"chat-relay/contract"
	"chat-relay/observability"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker refreshes this instance's presence TTL on a fixed
// ticker, decoupled from message volume. Config validation guarantees the
// interval is below half the TTL, so one missed tick never expires a live
// instance; a crashed instance simply stops ticking and lapses.
type HeartbeatWorker struct {
	log      *slog.Logger
	presence contract.Presence
	stats    *observability.RelayStats
	interval time.Duration
	ttl      time.Duration
}

func NewHeartbeatWorker(
	log *slog.Logger,
	presence contract.Presence,
	stats *observability.RelayStats,
	interval, ttl time.Duration,
) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:      log,
		presence: presence,
		stats:    stats,
		interval: interval,
		ttl:      ttl,
	}
}

// Run refreshes immediately so a restart never leaves a gap longer than
// one interval, then ticks until the context is canceled. Each tick also
// samples process health and the relay counters.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting presence heartbeat worker", "interval", w.interval, "ttl", w.ttl)
	w.presence.RefreshHeartbeat(ctx, w.ttl)

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.presence.RefreshHeartbeat(ctx, w.ttl)

			rss, cpu, status, err := getRelaySelfStats(p)
			if err != nil {
				w.log.Warn("Failed to collect self stats", "err", err)
				continue
			}

			snap := w.stats.Snapshot()
			w.log.Debug("Heartbeat",
				"ram_bytes", rss,
				"cpu_percent", cpu,
				"pid_status", status,
				"published", snap.Published,
				"received", snap.Received,
				"inbound_dropped", snap.InboundDropped,
				"decode_errors", snap.DecodeErrors,
			)
		}
	}
}

// getRelaySelfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func getRelaySelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
