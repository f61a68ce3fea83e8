package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hilthontt/companion/internal/infrastructure/configs"
	"github.com/hilthontt/companion/internal/infrastructure/metrics"
	"github.com/hilthontt/companion/internal/infrastructure/ratelimiter"
	countdownHandler "github.com/hilthontt/companion/internal/presentation/handler/countdown"
	diagnosticsHandler "github.com/hilthontt/companion/internal/presentation/handler/diagnostics"
	healthHandler "github.com/hilthontt/companion/internal/presentation/handler/health"
	motdHandler "github.com/hilthontt/companion/internal/presentation/handler/motd"
	pingsHandler "github.com/hilthontt/companion/internal/presentation/handler/pings"
	roomHandler "github.com/hilthontt/companion/internal/presentation/handler/rooms"
	todosHandler "github.com/hilthontt/companion/internal/presentation/handler/todos"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type Application struct {
	config             configs.Config
	roomHandler        roomHandler.Handler
	countdownHandler   countdownHandler.Handler
	motdHandler        motdHandler.Handler
	pingsHandler       pingsHandler.Handler
	todosHandler       todosHandler.Handler
	diagnosticsHandler diagnosticsHandler.Handler
	healthHandler      healthHandler.Handler
	logger             *zap.SugaredLogger
	ratelimiter        ratelimiter.Limiter
}

func NewApplication(
	config configs.Config,
	roomHandler roomHandler.Handler,
	countdownHandler countdownHandler.Handler,
	motdHandler motdHandler.Handler,
	pingsHandler pingsHandler.Handler,
	todosHandler todosHandler.Handler,
	diagnosticsHandler diagnosticsHandler.Handler,
	healthHandler healthHandler.Handler,
	logger *zap.SugaredLogger,
	ratelimiter ratelimiter.Limiter,
) *Application {
	return &Application{
		config:             config,
		roomHandler:        roomHandler,
		countdownHandler:   countdownHandler,
		motdHandler:        motdHandler,
		pingsHandler:       pingsHandler,
		todosHandler:       todosHandler,
		diagnosticsHandler: diagnosticsHandler,
		healthHandler:      healthHandler,
		logger:             logger,
		ratelimiter:        ratelimiter,
	}
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if app.config.RateLimiter.Enabled {
		r.Use(app.rateLimiterMiddleware)
	}
	r.Use(app.enableCors)
	r.Use(app.metricsMiddleware)

	r.Get("/", app.diagnosticsHandler.RootHandler)
	r.Get("/test", app.diagnosticsHandler.TestDatabaseHandler)
	r.Get("/health", app.healthHandler.GetHealth)
	r.Get("/healthz", app.healthHandler.GetHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", app.roomHandler.CreateRoomHandler)

		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", app.roomHandler.GetRoomHandler)

			r.Put("/countdown", app.countdownHandler.SetCountdownHandler)
			r.Get("/countdown", app.countdownHandler.GetCountdownHandler)

			r.Post("/motd", app.motdHandler.CreateMotdHandler)
			r.Get("/motd", app.motdHandler.ListMotdHandler)

			r.Post("/pings", app.pingsHandler.CreatePingHandler)
			r.Get("/pings", app.pingsHandler.ListPingsHandler)

			r.Route("/todos", func(r chi.Router) {
				r.Get("/", app.todosHandler.ListTodosHandler)
				r.Post("/", app.todosHandler.AddTodoHandler)
				r.Patch("/{todoId}", app.todosHandler.UpdateTodoHandler)
				r.Delete("/{todoId}", app.todosHandler.DeleteTodoHandler)
			})
		})
	})

	return r
}

func (app *Application) Run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", app.config.HTTP.Host, app.config.HTTP.Port),
		Handler:      otelhttp.NewHandler(mux, "companion-api"),
		WriteTimeout: app.config.HTTP.WriteTimeout,
		ReadTimeout:  app.config.HTTP.ReadTimeout,
		IdleTimeout:  app.config.HTTP.IdleTimeout,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", srv.Addr)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", srv.Addr)

	return nil
}
