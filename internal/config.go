package internal

import (
	"fmt"
	"time"
)

type Config struct {
	InstanceName      string        `env:"INSTANCE_NAME,required=true"`
	RedisURI          string        `env:"REDIS_URI,required=true"`
	PresenceTTL       time.Duration `env:"PRESENCE_TTL,required=true"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,required=true"`
	BufferSize        int           `env:"BUFFER_SIZE,required=true"`
	VanishResyncDelay time.Duration `env:"VANISH_RESYNC_DELAY"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
}

const defaultVanishResyncDelay = time.Second

// Validate rejects settings that would let a live instance's presence lapse.
// The heartbeat must fire at least twice per TTL window so that one missed
// tick does not expire the presence set.
func (c Config) Validate() error {
	if c.InstanceName == "" {
		return fmt.Errorf("INSTANCE_NAME must not be empty")
	}
	if c.PresenceTTL <= 0 {
		return fmt.Errorf("PRESENCE_TTL must be positive, got %s", c.PresenceTTL)
	}
	if c.HeartbeatInterval <= 0 || c.HeartbeatInterval >= c.PresenceTTL/2 {
		return fmt.Errorf("HEARTBEAT_INTERVAL must be below half of PRESENCE_TTL (%s), got %s",
			c.PresenceTTL, c.HeartbeatInterval)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("BUFFER_SIZE must be positive, got %d", c.BufferSize)
	}
	return nil
}

// ResyncDelay returns the configured vanish re-sync delay, or one second
// when unset, matching how long a late visibility extension typically needs
// to finish its own startup.
func (c Config) ResyncDelay() time.Duration {
	if c.VanishResyncDelay <= 0 {
		return defaultVanishResyncDelay
	}
	return c.VanishResyncDelay
}
