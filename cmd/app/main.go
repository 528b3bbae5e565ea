package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sushihentaime/blogist/internal/blogservice"
	"github.com/sushihentaime/blogist/internal/common"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	store       *common.Store
	blogService *blogservice.BlogService
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the database and create the schema if it is missing
	store, err := common.NewStore(context.Background(), common.StoreConfig{
		URL:          cfg.DB.URL,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxIdleTime:  cfg.DB.MaxIdleTime,
		AutoMigrate:  true,
	})
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	// The message broker is optional; without it no blog events are published
	var producer common.MessageProducer
	if cfg.RabbitMQ.URL != "" {
		broker, err := common.NewMessageBroker(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer broker.Close()

		err = common.SetupBlogExchange(broker)
		if err != nil {
			logger.Error("failed to setup the blog exchange", slog.String("error", err.Error()))
			os.Exit(1)
		}

		producer = broker
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       store,
		blogService: blogservice.NewBlogService(store, producer, logger),
	}

	// Start the HTTP server
	err = app.serve(":" + cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
