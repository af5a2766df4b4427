package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"schoolsite/internal/app"
	"schoolsite/internal/config"
	"schoolsite/internal/http/server"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
)

const (
	envDev   = "dev"
	envProd  = "prod"
	envLocal = "local"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting application", "env", cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := app.NewApp(ctx, log, cfg.DB, cfg.Cache, cfg.FileStorage, cfg.RateLimits, cfg.AdminToken)
	if err != nil {
		log.Error("failed to init app", slog.String("error", err.Error()))
		os.Exit(1)
	}

	services := server.Services{
		Auth:     app.AuthService,
		Teacher:  app.TeacherService,
		Review:   app.ReviewService,
		School:   app.SchoolService,
		Document: app.DocumentService,
		Product:  app.ProductService,
		Order:    app.OrderService,
		Limiter:  app.RateLimitService,
		DB:       app.DB,
	}

	err = server.StartServer(ctx, &cfg.HTTPServer, log, services)
	if err != nil {
		log.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return log
}
