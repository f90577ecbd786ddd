package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gardenfall/gardenfall-go/internal/config"
	"github.com/gardenfall/gardenfall-go/internal/game"
	"github.com/gardenfall/gardenfall-go/internal/repository"
	"github.com/gardenfall/gardenfall-go/internal/server"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting gardenfall server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	// Create context that listens for termination signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize game engine
	engine := game.NewEngine(logger, cfg.Engine.SolverMaxDepth)
	logger.Info("game engine initialized",
		zap.Int("solver_max_depth", cfg.Engine.SolverMaxDepth),
		zap.Int("max_sessions", cfg.Engine.MaxSessions),
	)

	// Initialize optional save store
	if cfg.Database.Enabled {
		db, dbErr := repository.NewDB(ctx, cfg.Database, logger)
		if dbErr != nil {
			logger.Fatal("failed to connect to database", zap.Error(dbErr))
		}
		defer db.Close()

		stats := db.Stat()
		logger.Info("database connection pool initialized",
			zap.Int32("total_conns", stats.TotalConns()),
			zap.Int32("idle_conns", stats.IdleConns()),
		)

		saves := repository.NewSaveStore(db, logger)
		if schemaErr := saves.EnsureSchema(ctx); schemaErr != nil {
			logger.Fatal("failed to prepare save schema", zap.Error(schemaErr))
		}
		logger.Info("save store initialized")
	}

	// Start WebSocket gateway
	gateway := server.NewGateway(engine, cfg.Server.WebSocket, logger)
	go func() {
		if wsErr := gateway.Serve(); wsErr != nil {
			logger.Error("websocket gateway error", zap.Error(wsErr))
		}
	}()

	logger.Info("gardenfall server initialized",
		zap.String("version", version),
		zap.String("websocket_address", cfg.Server.WebSocket.Address),
	)

	// Wait for termination signal
	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if shutdownErr := gateway.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("gateway shutdown error", zap.Error(shutdownErr))
	}

	logger.Info("gardenfall server stopped")
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
