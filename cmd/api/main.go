package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	httptransport "github.com/dsikarwar-ops/expense-tracker/internal/api/http"
	"github.com/dsikarwar-ops/expense-tracker/internal/api/http/handlers"
	"github.com/dsikarwar-ops/expense-tracker/internal/auth"
	"github.com/dsikarwar-ops/expense-tracker/internal/config"
	"github.com/dsikarwar-ops/expense-tracker/internal/events"
	"github.com/dsikarwar-ops/expense-tracker/internal/observability"
	"github.com/dsikarwar-ops/expense-tracker/internal/persistence"
	"github.com/dsikarwar-ops/expense-tracker/internal/repository"
	"github.com/dsikarwar-ops/expense-tracker/internal/service"
	"github.com/dsikarwar-ops/expense-tracker/internal/worker"
)

func main() {
	// amounts serialize as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	authService := service.NewAuthService(cfg.Auth, userRepo)
	expenseService := service.NewExpenseService(expenseRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Expenses:       handlers.NewExpensesHandler(expenseService),
		Analytics:      handlers.NewAnalyticsHandler(expenseService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
