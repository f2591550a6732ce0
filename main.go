// main.go
package main

import (
	"context"
	"log"
	"time"

	"service-booking/cmd"
	"service-booking/internal/booking"
	"service-booking/internal/data/repository"
	"service-booking/internal/notification"
	"service-booking/internal/wire"
	"service-booking/pkg/database"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	formSessionTTL = 30 * time.Minute
	formSweepEvery = 5 * time.Minute
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("fixture_data", config.App.UseFixtureData),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if err := database.Migrate(config.App.MigrationsPath, config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Fixture mode serves canned orders instead of the live table, useful for
	// demos and front-end work against a known dataset.
	if config.App.UseFixtureData {
		repos.Order = repository.NewFixtureOrderRepository(logger)
		logger.Warn("Order data served from fixtures")
	}

	// Booking form sessions with idle sweep
	forms := booking.NewManager(formSessionTTL, logger)
	go forms.Run(context.Background(), formSweepEvery)

	notifier := notification.NewDiscordNotifier(config.Webhook.DiscordURL, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, forms, notifier, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
