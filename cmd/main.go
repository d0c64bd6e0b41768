// Package main wires the HTTP server for the collaboration backend.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/config"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/identity"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/notify"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/repository"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/transport/http/middleware"
	handlers_fiber "github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/transport/http/server/handlers-fiber"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/usecase"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.Notify.MailAPIURL != "" {
		notifier = notify.NewMailer(log, notify.MailerConfig{
			URL:         cfg.Notify.MailAPIURL,
			APIKey:      cfg.Notify.MailAPIKey,
			FromAddress: cfg.Notify.FromAddress,
			SendTimeout: cfg.Notify.SendTimeout,
		})
	}
	dispatcher := notify.NewDispatcher(log, notifier, cfg.Notify.QueueSize)
	defer dispatcher.Stop()

	ident := identity.New(log, repo, cfg.Auth.JWTSecret)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, ident, dispatcher, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc, ident)
	h.RegisterRoutes(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
