package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"meetup-planner/core/cache"
	"meetup-planner/core/config"
	"meetup-planner/core/constants"
	"meetup-planner/core/database"
	"meetup-planner/core/logger"
	"meetup-planner/core/middleware"
	"meetup-planner/core/queue"
	"meetup-planner/modules/auth"
	"meetup-planner/modules/availability"
	"meetup-planner/modules/contact"
	"meetup-planner/modules/meetup"
	"meetup-planner/modules/message"
	"meetup-planner/modules/notification"
	"meetup-planner/modules/planner"
	"meetup-planner/modules/venue"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run loads config, wires every module and serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(cfg.Database.URL()); err != nil {
			return err
		}
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		logger.Warn("Server:Run:CacheDisabled", "error", err)
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	queueClient := queue.NewClient(cfg.Redis, cfg.Queue)
	defer queueClient.Close()
	worker := queue.NewWorker(cfg.Redis, cfg.Queue)

	e, err := build(ctx, cfg, db, redisCache, queueClient, worker)
	if err != nil {
		return err
	}

	if err := worker.Start(); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	defer worker.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server:Run:Listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Server:Run:ShuttingDown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// build registers routes and background handlers. c may be nil.
func build(ctx context.Context, cfg *config.Config, db database.IDatabase, c cache.Cache, q queue.Enqueuer, w *queue.Worker) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	mw := middleware.NewMiddleware(cfg.JWT.Secret)

	e.Use(echoMiddleware.Recover())
	e.Use(mw.RequestID())
	e.Use(echoMiddleware.CORS())

	e.GET("/health", healthHandler(db, c))

	auth.Init(e, c, cfg.Auth, cfg.JWT.Secret)

	contacts := contact.Init(e, db, mw)

	slots, err := availability.Init(e, db, mw, cfg.Availability, contacts)
	if err != nil {
		return nil, err
	}

	venues, err := venue.Init(ctx, e, db, c, mw, cfg.Venue, contacts)
	if err != nil {
		return nil, err
	}

	messages, err := message.Init(e, mw, cfg.Message.Locale, contacts, venues)
	if err != nil {
		return nil, err
	}

	meetups := meetup.Init(e, db, mw, contacts)
	invites := notification.Init(e, mw, q, w, meetups, contacts, venues, messages)

	planner.Init(e, mw, planner.Deps{
		Contacts: contacts,
		Slots:    slots,
		Venues:   venues,
		Messages: messages,
		Meetups:  meetups,
		Invites:  invites,
	})

	return e, nil
}

func healthHandler(db database.IDatabase, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		status := map[string]string{"status": "ok", "database": "ok", "cache": "disabled"}
		code := http.StatusOK

		reqCtx := ctx.Request().Context()
		if err := db.PingContext(reqCtx); err != nil {
			status["status"], status["database"] = "degraded", err.Error()
			code = http.StatusServiceUnavailable
		}
		if c != nil {
			status["cache"] = "ok"
			if err := c.Ping(reqCtx); err != nil {
				status["cache"] = err.Error()
			}
		}
		return ctx.JSON(code, status)
	}
}
