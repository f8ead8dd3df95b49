package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/kardash/internal/adapter"
	"github.com/MKhiriev/kardash/internal/client"
	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/gateway"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/service"
	"github.com/MKhiriev/kardash/internal/store"
	"github.com/MKhiriev/kardash/internal/tui"
	"github.com/MKhiriev/kardash/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("kardash", cfg.App.LogDir)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("invalid log level, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, args, log); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "kardash: %v\n", err)
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, args []string, log *logger.Logger) error {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	gw, err := gateway.New(cfg.Adapter, storages.Sessions, log)
	if err != nil {
		return fmt.Errorf("create request gateway: %w", err)
	}

	services := service.NewClientServices(storages.Sessions, adapter.NewHTTPServerAdapter(gw, log), log)

	ui, err := tui.New(services, storages.Sessions, cfg.Workers, log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(services, ui, storages.Sessions, cfg.Workers, os.Stdout, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	app.SetBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	return app.Run(ctx, args)
}
