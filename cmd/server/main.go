package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/CastilloJC/reservas/internal/common/config"
	"github.com/CastilloJC/reservas/internal/common/logging"
	"github.com/CastilloJC/reservas/internal/handler"
	"github.com/CastilloJC/reservas/internal/repository"
	"github.com/CastilloJC/reservas/internal/service"
	"github.com/CastilloJC/reservas/web"
)

func main() {
	// Variables de entorno desde .env para el desarrollo local
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	slog.SetDefault(logger)

	// Configuración de X-Ray cuando las trazas están activas
	if cfg.EnableTracing {
		if err := xray.Configure(xray.Config{
			DaemonAddr:     "127.0.0.1:2000",
			ServiceVersion: "1.0.0",
		}); err != nil {
			slog.Warn("failed to configure X-Ray, using defaults", slog.Any("error", err))
			if configErr := xray.Configure(xray.Config{}); configErr != nil {
				slog.Error("failed to configure default X-Ray settings", slog.Any("error", configErr))
				os.Exit(1)
			}
		}
		os.Setenv("AWS_XRAY_CONTEXT_MISSING", "LOG_ERROR")
	}

	db, err := repository.NewDB(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	svc := service.NewReservationService(repository.NewReservationRepository(db))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	handler.NewReservationHandler(svc).Register(e)

	// Interfaz embebida
	e.FileFS("/", "index.html", web.FS)
	e.FileFS("/app.js", "app.js", web.FS)
	e.FileFS("/styles.css", "styles.css", web.FS)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()
	slog.Info("server started", slog.String("port", cfg.Server.Port))

	// Apagado ordenado ante SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", slog.Any("error", err))
	}
}
