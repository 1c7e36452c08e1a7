package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"smartir_service/internal/handlers"
	"smartir_service/internal/logger"
	"smartir_service/internal/repository"
	"smartir_service/internal/server"
	"smartir_service/internal/service"

	_ "smartir_service/docs"

	"github.com/spf13/viper"
)

// @title           SmartIR Conversion Service API
// @version         1.0
// @description     Converts IR remote codes (Pronto hex, raw pulse arrays) into Broadlink base64 payloads and manages the resulting device catalog.

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, serviceConfig(log))
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, services, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// serviceConfig assembles the policy knobs from configuration.
func serviceConfig(log *logger.Logger) service.Config {
	key := viper.GetString("auth.signing_key")
	if key == "" {
		log.Warnw("auth.signing_key not set in config; tokens will not survive restarts")
	}
	return service.Config{
		SigningKey:  key,
		ProtocolHz:  protocolTable(log),
		MinCommands: viper.GetInt("policy.min_commands"),
		JobWorkers:  viper.GetInt("policy.job_workers"),
	}
}

// protocolTable reads the protocol-to-carrier map from config. An empty map
// leaves the built-in defaults in force.
func protocolTable(log *logger.Logger) map[string]uint32 {
	raw := viper.GetStringMapString("protocols")
	if len(raw) == 0 {
		return nil
	}
	table := make(map[string]uint32, len(raw))
	for tag, hzStr := range raw {
		hz, err := strconv.ParseUint(hzStr, 10, 32)
		if err != nil {
			log.Warnw("skipping invalid protocol frequency", "protocol", tag, "value", hzStr)
			continue
		}
		table[tag] = uint32(hz)
	}
	return table
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return repository.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, services *service.Service, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop batch workers; running jobs are canceled
	services.Jobs.Shutdown()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
