package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-product-keeper/internal/config"
	"github.com/MKhiriev/go-product-keeper/internal/handler"
	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/internal/server"
	"github.com/MKhiriev/go-product-keeper/internal/service"
	"github.com/MKhiriev/go-product-keeper/internal/store"
	"github.com/MKhiriev/go-product-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("product-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if !logger.SetLevel(cfg.Server.LogLevel) && cfg.Server.LogLevel != "" {
		log.Warn().Str("log_level", cfg.Server.LogLevel).Msg("unknown log level, keeping debug")
	}

	// the sign key is never logged
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("token_issuer", cfg.Auth.TokenIssuer).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
