package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/handler"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/mockdata"
	"github.com/MKhiriev/kardash/internal/server"
	"github.com/MKhiriev/kardash/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("kardash-mockserver")
	cfg, err := config.GetMockServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("issuer", cfg.Auth.TokenIssuer).Msg("received configs")

	catalog, err := mockdata.NewCatalog(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding mock data")
	}

	handlers, err := handler.NewHandlers(catalog, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
