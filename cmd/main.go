package main

import (
	"context"
	"expvar"
	"log"
	"runtime"

	"github.com/hilthontt/companion/internal/infrastructure/configs"
	"github.com/hilthontt/companion/internal/infrastructure/events"
	"github.com/hilthontt/companion/internal/infrastructure/logging"
	"github.com/hilthontt/companion/internal/infrastructure/messaging"
	"github.com/hilthontt/companion/internal/infrastructure/ratelimiter"
	"github.com/hilthontt/companion/internal/infrastructure/tracing"
	"github.com/hilthontt/companion/internal/persistence/db"
	"github.com/hilthontt/companion/internal/persistence/repository"
	"github.com/hilthontt/companion/internal/presentation/api"
	"github.com/hilthontt/companion/internal/presentation/handler/countdown"
	"github.com/hilthontt/companion/internal/presentation/handler/diagnostics"
	"github.com/hilthontt/companion/internal/presentation/handler/health"
	"github.com/hilthontt/companion/internal/presentation/handler/motd"
	"github.com/hilthontt/companion/internal/presentation/handler/pings"
	"github.com/hilthontt/companion/internal/presentation/handler/rooms"
	"github.com/hilthontt/companion/internal/presentation/handler/todos"
)

const (
	serviceName = "companion-api"
)

func main() {
	tracerCfg := tracing.NewDefaultConfig(serviceName)

	sh, err := tracing.InitTracer(tracerCfg)
	if err != nil {
		log.Fatalf("Failed to initialize the tracer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer sh(ctx)

	logger := logging.New(logging.NewDefaultConfig())
	defer logger.Sync()

	configPath := configs.DetermineConfigPath()
	cfg, err := configs.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	// The store handle is process-wide and initialized exactly once. A dead
	// database does not stop the service: /test reports the state and data
	// endpoints fail per request until the store comes back.
	mongoCfg := db.NewMongoDefaultConfig()
	client, err := db.NewMongoClient(ctx, mongoCfg)
	if err != nil {
		logger.Warnw("mongodb unavailable at startup, serving without a store handle", "error", err)
	}
	defer db.DisconnectMongo(context.Background(), client)

	store := db.NewStore(db.GetDatabase(client, mongoCfg))

	var rabbitmq *messaging.RabbitMQ
	if cfg.Broker.URI != "" {
		rabbitmq, err = messaging.NewRabbitMQ(cfg.Broker.URI)
		if err != nil {
			logger.Warnw("rabbitmq unavailable, activity events disabled", "error", err)
		} else {
			defer rabbitmq.Close()
			logger.Infow("activity events enabled", "exchange", messaging.ActivityExchange)
		}
	}
	publisher := events.NewActivityPublisher(rabbitmq)

	roomRepository := repository.NewRoomRepository(store)
	countdownRepository := repository.NewCountdownRepository(store)
	motdRepository := repository.NewMotdRepository(store)
	pingRepository := repository.NewPingRepository(store)
	todoRepository := repository.NewTodoRepository(store)

	roomHandler := rooms.NewHandler(roomRepository, publisher)
	countdownHandler := countdown.NewHandler(countdownRepository, publisher)
	motdHandler := motd.NewHandler(motdRepository, publisher)
	pingsHandler := pings.NewHandler(pingRepository, publisher)
	todosHandler := todos.NewHandler(todoRepository, publisher)
	diagnosticsHandler := diagnostics.NewHandler(store)
	healthHandler := health.NewHandler()

	rl := ratelimiter.New(ratelimiter.Options{
		MaxRatePerSecond: cfg.RateLimiter.MaxRatePerSecond,
		MaxBurst:         cfg.RateLimiter.MaxBurst,
		CacheTTL:         cfg.RateLimiter.CacheTTL,
		SourceHeaderKey:  cfg.RateLimiter.SourceHeaderKey,
	})

	app := api.NewApplication(
		*cfg,
		*roomHandler,
		*countdownHandler,
		*motdHandler,
		*pingsHandler,
		*todosHandler,
		*diagnosticsHandler,
		*healthHandler,
		logger,
		rl,
	)

	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.Mount()
	logger.Fatal(app.Run(mux))
}
