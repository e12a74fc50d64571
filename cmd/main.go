// Command main starts the duty rotation service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"duty-rotation-service/config"
	handlers_fiber "duty-rotation-service/internal/transport/http/server/handlers-fiber"
	"duty-rotation-service/internal/usecase"

	"duty-rotation-service/internal/repository"
	"duty-rotation-service/internal/scheduler"
	"duty-rotation-service/internal/session"
	"duty-rotation-service/internal/transport/http/middleware"
	"duty-rotation-service/pkg/logger"

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

	repo, err := repository.New(ctx, "jsonfile", log, cfg)
	if err != nil {
		log.Fatalw("failed to build repository", "error", err)
	}

	if err := repo.OnStart(ctx); err != nil {
		log.Fatalw("failed to start repository", "error", err)
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	sessions := session.NewManager(cfg.Session.TTL)
	go sessions.Run(ctx)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, sessions, timeout, cfg.Reminder.Message)

	sched := scheduler.New(log, cfg.Reminder.Schedule, uc, scheduler.NewLogNotifier(log))
	if err := sched.Start(); err != nil {
		log.Fatalw("failed to start reminder scheduler", "error", err)
	}
	defer sched.Stop()

	serv := fiber.New(fiber.Config{
		ReadTimeout: timeout,
	})

	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	h := handlers_fiber.NewHandler(log, uc)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = serv.Shutdown()
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("shutdown timed out")
	}
}
