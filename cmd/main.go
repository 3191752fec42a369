package main

import (
	"chat-relay/domain"
	"chat-relay/internal"
	"chat-relay/runtime"
	"chat-relay/sink"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the relay lifecycle, and centralizes
// error reporting so every 'defer' executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Relay setup
	directory := domain.NewInMemoryDirectory()
	relay, err := runtime.NewRelay(log, config, directory, nil)
	if err != nil {
		return fmt.Errorf("relay setup failed: %w", err)
	}
	relay.RegisterSinks(sink.NewConsoleSink(log))

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Run until interrupted; Start blocks while the workers live
	log.Info("Starting relay", "instance", config.InstanceName)
	if err := relay.Start(ctx); err != nil {
		return fmt.Errorf("relay failed to start: %w", err)
	}

	// 5. Final cleanup: presence first, then the bus
	log.Info("Shutting down gracefully...")
	relay.Shutdown(context.Background())
	log.Info("Program stopped cleanly")

	return nil
}
