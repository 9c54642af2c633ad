package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/usecase"
	balanceUseCase "github.com/amirhossein-jamali/expense-splitter/internal/domain/usecase/balance"
	contactUseCase "github.com/amirhossein-jamali/expense-splitter/internal/domain/usecase/contact"
	expenseUseCase "github.com/amirhossein-jamali/expense-splitter/internal/domain/usecase/expense"
	groupUseCase "github.com/amirhossein-jamali/expense-splitter/internal/domain/usecase/group"
	userUseCase "github.com/amirhossein-jamali/expense-splitter/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		OutputPaths: outputPaths(cfg.Logger.Output),
		Production:  cfg.IsProduction(),
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	warnProductionSettings(cfg, appLogger)
	gin.SetMode(cfg.Server.Mode)

	tp := timeProvider.NewRealTimeProvider()
	ids := idgen.NewUUIDGenerator()

	// Metrics stay nil when disabled so the database and HTTP layers skip recording
	var (
		appMetrics   *metrics.Metrics
		observer     database.QueryObserver
		poolRecorder database.PoolStatsRecorder
		httpRecorder middleware.HTTPRecorder
	)
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New()
		observer = appMetrics
		poolRecorder = appMetrics
		httpRecorder = appMetrics
	}

	// Connect to the database
	dbManager := database.NewManager(database.ConfigFromAppConfig(cfg), appLogger, tp, observer, poolRecorder)
	if _, err := dbManager.Connect(context.Background()); err != nil {
		appLogger.Error("Failed to connect to database", coreport.ErrorFields(err, nil))
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", coreport.ErrorFields(err, nil))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := dbManager.Migrate(context.Background()); err != nil {
			appLogger.Error("Failed to run migrations", coreport.ErrorFields(err, nil))
			os.Exit(1)
		}
	}

	// Security adapters
	tokenManager, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token manager", coreport.ErrorFields(err, nil))
		os.Exit(1)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Repositories used outside a unit of work
	db := dbManager.DB()
	userRepo := repository.NewUserRepository(db, appLogger)
	groupRepo := repository.NewGroupRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)

	uow := dbManager.CreateUnitOfWork()

	// Initialize use cases
	userService := userUseCase.NewUserService(userRepo, hasher, tokenManager, ids, tp, appLogger)
	contactService := contactUseCase.NewContactService(uow, tp, appLogger)
	groupService := groupUseCase.NewGroupService(uow, ids, tp, appLogger)
	expenseService := expenseUseCase.NewExpenseService(uow, ids, tp, appLogger)
	balanceService := balanceUseCase.NewBalanceService(expenseRepo, groupRepo, appLogger)

	if cfg.Seed.Enabled {
		if err := userService.EnsureUsers(context.Background(), seedAccounts(cfg.Seed.Users)); err != nil {
			appLogger.Error("Failed to create seed users", coreport.ErrorFields(err, nil))
		}
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, httpRecorder, cfg.Server.RequestTimeout)
	routes.SetupRoutes(router, routes.Handlers{
		User:    handler.NewUserHandler(userService, appLogger),
		Contact: handler.NewContactHandler(contactService, appLogger),
		Group:   handler.NewGroupHandler(groupService, appLogger),
		Expense: handler.NewExpenseHandler(expenseService, balanceService, appLogger),
		Health:  handler.NewHealthHandler(dbManager, appLogger),
	}, middleware.Auth(tokenManager, appLogger))
	if appMetrics != nil {
		router.GET(cfg.Metrics.Path, gin.WrapH(appMetrics.Handler()))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           middleware.CORS(cfg.CORS)(router),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"driver":  cfg.Database.Driver,
			"metrics": cfg.Metrics.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		appLogger.Error("Failed to start server", coreport.ErrorFields(err, nil))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", coreport.ErrorFields(err, nil))
	}

	appLogger.Info("Server exited gracefully", nil)
}

func seedAccounts(users []config.SeedUser) []usecase.RegisterRequest {
	accounts := make([]usecase.RegisterRequest, 0, len(users))
	for _, u := range users {
		accounts = append(accounts, usecase.RegisterRequest{
			Username: u.Username,
			Email:    u.Email,
			Password: u.Password,
		})
	}
	return accounts
}

func outputPaths(output string) []string {
	if output == "" {
		return nil
	}
	return strings.Split(output, ",")
}

// warnProductionSettings logs settings that are legal but unsafe in production
func warnProductionSettings(cfg *config.Config, appLogger coreport.Logger) {
	if !cfg.IsProduction() {
		return
	}

	var warnings []string

	switch strings.ToLower(cfg.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		if cfg.Database.Driver == database.DriverPostgres {
			warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full'")
		}
	}
	if cfg.Database.Driver == database.DriverSQLite {
		warnings = append(warnings, "sqlite is intended for development and tests")
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes")
	}
	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Seed.Enabled {
		warnings = append(warnings, "seed users are enabled")
	}
	for _, origin := range cfg.CORS.AllowedOrigins {
		if origin == "*" {
			warnings = append(warnings, "cors.allowedOrigins allows any origin")
			break
		}
	}

	if len(warnings) > 0 {
		appLogger.Warn("Potential issues in production configuration", map[string]any{
			"warnings": warnings,
		})
	}
}
