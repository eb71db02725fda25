// The relay worker mirrors booking state off the event topic: it
// consumes booking change events published by the API and folds them
// into an in-memory set, the same convergence loop the API runs against
// the store's own change feed.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"roomly/internal/bookings/relay"
	"roomly/internal/bookings/state"
	"roomly/pkg/kafka"
	kafkaconfig "roomly/pkg/kafka/config"
	"roomly/pkg/logger"
)

const (
	ServiceName   = "booking-relay"
	ConsumerGroup = "booking-relay"
)

func main() {
	log := logger.New(logger.Config{
		Level:     getEnv("LOG_LEVEL", "info"),
		Format:    logger.JSON,
		AddSource: true,
		Service:   ServiceName,
	})

	kafkaCfg, err := kafkaconfig.Load()
	if err != nil {
		log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(log.Info)

	set := state.NewSet()
	applier := relay.NewApplier(state.NewReconciler(set), log)

	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		log,
		relay.Topic,
		ConsumerGroup,
		relay.DLQTopic,
		applier.Handle,
	)
	if err != nil {
		log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-shutdown
		log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	log.Info("Starting booking relay", "topic", relay.Topic, "group", ConsumerGroup)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Consumer stopped", "error", err)
	}

	if err := consumer.Close(); err != nil {
		log.Error("Failed to close consumer", "error", err)
	}
	log.Info("Relay stopped", "tracked_bookings", set.Len())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
