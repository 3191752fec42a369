package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DELIVERY_TIMEOUT bounds how long a scenario waits for a message
	// to cross instances before failing
	DeliveryTimeout time.Duration `envconfig:"E2E_DELIVERY_TIMEOUT" default:"5s"`
	// E2E_LOG_LEVEL controls relay verbosity during scenarios
	LogLevel string `envconfig:"E2E_LOG_LEVEL" default:"error"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
