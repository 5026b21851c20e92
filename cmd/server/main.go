package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"addisKitchen/internal/config"
	adminusecase "addisKitchen/internal/modules/admin/application/usecase"
	admininfra "addisKitchen/internal/modules/admin/infrastructure"
	admintransport "addisKitchen/internal/modules/admin/interface"
	cartinfra "addisKitchen/internal/modules/cart/infrastructure"
	carttransport "addisKitchen/internal/modules/cart/interface"
	menudomain "addisKitchen/internal/modules/menu/domain"
	menuinfra "addisKitchen/internal/modules/menu/infrastructure"
	menutransport "addisKitchen/internal/modules/menu/interface"
	messagesinfra "addisKitchen/internal/modules/messages/infrastructure"
	messagestransport "addisKitchen/internal/modules/messages/interface"
	ordersusecase "addisKitchen/internal/modules/orders/application/usecase"
	ordersinfra "addisKitchen/internal/modules/orders/infrastructure"
	orderstransport "addisKitchen/internal/modules/orders/interface"
	reservationsinfra "addisKitchen/internal/modules/reservations/infrastructure"
	reservationstransport "addisKitchen/internal/modules/reservations/interface"
	"addisKitchen/internal/platform/broker"
	"addisKitchen/internal/platform/storage"
	"addisKitchen/internal/shared/auth"
	"addisKitchen/internal/shared/logging"
	"addisKitchen/internal/shared/notify"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
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

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := storage.Connect(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("database connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := storage.ApplyMigrations(ctx, pool); err != nil {
			slog.Error("migrate failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}
	if v := os.Getenv("AUTO_MIGRATE"); v == "1" || v == "true" {
		if err := storage.ApplyMigrations(ctx, pool); err != nil {
			slog.Error("auto-migrate failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// Notification collaborator: Kafka when brokers are configured, slog otherwise.
	var notifier notify.Notifier = notify.LogNotifier{}
	if cfg.Kafka.Enabled() {
		producer := broker.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		notifier = producer
		slog.Info("kafka notifier enabled", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))
	}

	jwtManager := auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.TokenTTL)

	menuRepo := menuinfra.NewRepository(pool)
	ordersRepo := ordersinfra.NewRepository(pool)
	reservationsRepo := reservationsinfra.NewRepository(pool)
	messagesRepo := messagesinfra.NewRepository(pool)
	adminRepo := admininfra.NewRepository(pool)

	if username, password := os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD"); username != "" && password != "" {
		if err := adminRepo.EnsureUser(ctx, username, password); err != nil {
			slog.Error("admin seed failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	carts := cartinfra.NewSessionStore()
	submitOrder := ordersusecase.NewSubmitOrderUseCase(ordersRepo, notifier)
	signIn := adminusecase.NewSignInUseCase(adminRepo, jwtManager)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	admin := e.Group("/admin/api", admintransport.RequireAuth(jwtManager))

	admintransport.NewHandler(signIn).Register(e, admin)
	menutransport.NewHandler(menuRepo, notifier).Register(e, admin)
	carttransport.NewHandler(carts, func(c echo.Context, id string) (*menudomain.MenuItem, error) {
		return menuRepo.GetItem(c.Request().Context(), id)
	}).Register(e)
	orderstransport.NewHandler(submitOrder, ordersRepo, carts, notifier).Register(e, admin)
	reservationstransport.NewHandler(reservationsRepo, notifier).Register(e, admin)
	messagestransport.NewHandler(messagesRepo, notifier).Register(e, admin)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
