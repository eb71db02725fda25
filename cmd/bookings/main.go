package main

import (
	"context"
	"os"
	"time"

	"roomly/internal/bookings/handler"
	"roomly/internal/bookings/listener"
	"roomly/internal/bookings/relay"
	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/service"
	"roomly/internal/bookings/state"
	"roomly/internal/bookings/validator"
	"roomly/internal/timegrid"
	"roomly/pkg/app"
	"roomly/pkg/config"
	"roomly/pkg/kafka"
	kafkaconfig "roomly/pkg/kafka/config"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Bookings service")

	bookingRepo := repository.NewMongoBookingRepository(cfg)
	lockRepo := repository.NewSlotLockRepository(cfg)
	set := state.NewSet()
	reconciler := state.NewReconciler(set)

	bookingService := service.NewBookingService(
		bookingRepo,
		lockRepo,
		validator.NewBookingValidator(cfg.Log),
		set,
		cfg,
	)
	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)

	window := bookingWindow(cfg)
	loadSnapshot(cfg, bookingRepo, set, window)

	sync := listener.New(func(ctx context.Context, filter repository.Filter) (listener.Subscription, error) {
		return bookingRepo.Subscribe(ctx, filter)
	}, reconciler, cfg, window)

	if os.Getenv(kafkaconfig.EnvKafkaBrokers) != "" {
		wireRelay(cfg, sync)
	}

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
	)
	serverApp.AddWorker(sync.Run)
	serverApp.Run()
}

// bookingWindow scopes the snapshot and the change subscription to the
// dates a booking may occupy: today through the advance limit.
func bookingWindow(cfg *config.Config) repository.Filter {
	today := time.Now()
	return repository.Filter{
		DateFrom: today.Format(timegrid.DateLayout),
		DateTo:   today.AddDate(0, 0, cfg.MaxAdvanceDays).Format(timegrid.DateLayout),
	}
}

func loadSnapshot(cfg *config.Config, repo repository.BookingRepository, set *state.Set, window repository.Filter) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ReadTimeout)
	defer cancel()

	bookings, err := repo.Query(ctx, window)
	if err != nil {
		cfg.Log.Fatal("Failed to load booking snapshot", "error", err)
	}

	set.Load(bookings)
	cfg.Log.Info("Booking snapshot loaded",
		"count", len(bookings),
		"from", window.DateFrom,
		"to", window.DateTo,
	)
}

func wireRelay(cfg *config.Config, sync *listener.Listener) {
	kafkaCfg, err := kafkaconfig.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.Log, relay.Topic, relay.DLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	publisher := relay.NewPublisher(producer, ServiceName, cfg.Log)
	sync.AddHook(publisher.Hook())
	cfg.Log.Info("Change event relay enabled", "topic", relay.Topic)
}
