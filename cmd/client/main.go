package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-product-keeper/internal/adapter"
	"github.com/MKhiriev/go-product-keeper/internal/client"
	"github.com/MKhiriev/go-product-keeper/internal/config"
	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("product-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if !logger.SetLevel(cfg.LogLevel) {
		logger.SetLevel("warn")
	}

	if len(args) == 1 && args[0] == "build-info" {
		printBuildInfo()
		return
	}

	productAdapter, err := adapter.NewHTTPProductAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create product adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(productAdapter, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrWrongArgs) {
			fmt.Fprint(os.Stderr, client.Usage)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
