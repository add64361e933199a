// File: app/app.go
package app

import (
	"context"
	"currency-exchange-api/config"
	"currency-exchange-api/db"
	"currency-exchange-api/handler"
	"currency-exchange-api/logger"
	"currency-exchange-api/nbp"
	"currency-exchange-api/repository"
	"currency-exchange-api/router"
	"currency-exchange-api/service"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	dbCfg := config.AppConfig.Database
	migrationURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbCfg.User, dbCfg.Password, dbCfg.Host, dbCfg.Port, dbCfg.Name)
	if err := db.RunMigrations(migrationURL); err != nil {
		logger.Log.Fatalf("Error running database migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	nbpClient := nbp.NewClient(config.AppConfig.NBP)
	r := newRouter(database, redisClient, nbpClient)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// newRouter wires all layers together over the given dependencies.
// This section is crucial for dependency injection.
func newRouter(database *sql.DB, cache service.ICacheClient, rates service.RateProvider) http.Handler {
	accountRepo := repository.NewAccountRepository(database)

	accountService := service.NewAccountService(accountRepo, cache)
	exchangeService := service.NewExchangeService(database, accountRepo, rates, cache)

	accountHandler := handler.NewAccountHandler(accountService)
	exchangeHandler := handler.NewExchangeHandler(exchangeService)

	return router.NewRouter(accountHandler, exchangeHandler)
}

// TestApp bundles the wired router with its database handle for
// integration-style tests.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

// NewTestApp wires all layers over the given dependencies, skipping config
// loading, migrations and the HTTP listener.
func NewTestApp(database *sql.DB, cache service.ICacheClient, rates service.RateProvider) *TestApp {
	return &TestApp{
		DB:     database,
		Router: newRouter(database, cache, rates),
	}
}
