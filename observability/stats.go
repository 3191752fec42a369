package observability

import "sync/atomic"

// StatsSnapshot is a point-in-time copy of the relay counters, shaped for
// logging or a host dashboard.
type StatsSnapshot struct {
	Published        uint64 `json:"published"`
	Received         uint64 `json:"received"`
	InboundDropped   uint64 `json:"inbound_dropped"`
	DecodeErrors     uint64 `json:"decode_errors"`
	LocalDeliveries  uint64 `json:"local_deliveries"`
	RemoteDeliveries uint64 `json:"remote_deliveries"`
	NotFound         uint64 `json:"not_found"`
}

// RelayStats aggregates live counters across the bus, router, and inbox.
// All fields are atomics; writers never coordinate.
type RelayStats struct {
	Published        atomic.Uint64
	Received         atomic.Uint64
	InboundDropped   atomic.Uint64
	DecodeErrors     atomic.Uint64
	LocalDeliveries  atomic.Uint64
	RemoteDeliveries atomic.Uint64
	NotFound         atomic.Uint64
}

func NewRelayStats() *RelayStats {
	return &RelayStats{}
}

func (s *RelayStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Published:        s.Published.Load(),
		Received:         s.Received.Load(),
		InboundDropped:   s.InboundDropped.Load(),
		DecodeErrors:     s.DecodeErrors.Load(),
		LocalDeliveries:  s.LocalDeliveries.Load(),
		RemoteDeliveries: s.RemoteDeliveries.Load(),
		NotFound:         s.NotFound.Load(),
	}
}
