package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/crowncast/cliparse"
	"github.com/danielhkuo/crowncast/db"
	"github.com/danielhkuo/crowncast/ledger"
	"github.com/danielhkuo/crowncast/metrics"
	"github.com/danielhkuo/crowncast/middleware"
	"github.com/danielhkuo/crowncast/router"
	"github.com/danielhkuo/crowncast/sysconfig"
)

func main() {
	var err error

	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		slog.Error("invalid time zone", "tz", cfg.TimeZone, "error", err)
		os.Exit(1)
	}

	// Connect to the database
	driver := "sqlite"
	dsn := cfg.DatabaseURL
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	} else {
		dsn = "file:" + cfg.DatabaseURL + "?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)"
	}

	dbConn, err := sql.Open(driver, dsn)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables + config singleton)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "driver", cfg.DatabaseType)

	// Load durable state
	config, err := sysconfig.Load(context.Background(), dbConn)
	if err != nil {
		slog.Error("system config load failed", "error", err)
		os.Exit(1)
	}
	store := ledger.New(dbConn, config, loc)

	// Metrics
	ms, metricsHandler := metrics.NewService()

	// Create router
	mux := router.NewRouter(store, config, cfg, ms, metricsHandler)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
