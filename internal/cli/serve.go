package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ctws/internal/app"
	"ctws/internal/database"
	"ctws/internal/events"
	"ctws/pkg/rabbitmq"

	"github.com/spf13/cobra"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "Apply schema migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if serveMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	// Events are optional; without a broker URL writes are simply not published.
	var publisher events.Publisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQURL,
			Exchange: cfg.RabbitMQExchange,
		}, log.WithField("component", "rabbitmq"))
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	}

	fiberApp, err := app.New(app.Deps{
		Config:    cfg,
		DB:        db,
		Log:       log,
		Publisher: publisher,
	})
	if err != nil {
		return err
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	listenErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.AppPort).Info("starting server")
		listenErr <- fiberApp.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down server")
	}

	if err := fiberApp.Shutdown(); err != nil {
		log.WithError(err).Error("error during shutdown")
		return err
	}
	log.Info("server gracefully stopped")
	return nil
}
