package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"number-management-service/core/config"
	"number-management-service/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Number Management Service API
// @version 1.0
// @description Aggregates, deduplicates and sorts the numbers published by remote sources.
// @host localhost:8008
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the number management server",
	Long:  `Starts the HTTP server and serves GET /numbers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app, err := newApp(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info(cfg.Server.Name+" is running",
				zap.String("address", cfg.Server.Address()),
				zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
