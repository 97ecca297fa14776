package main

import (
	"fmt"
	"time"

	"github.com/akarimov/study-keeper/internal/adapter"
	"github.com/akarimov/study-keeper/internal/client"
	"github.com/akarimov/study-keeper/internal/config"
	"github.com/akarimov/study-keeper/internal/connectivity"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/service"
	"github.com/akarimov/study-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("study-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	oracle := connectivity.NewProber(cfg.Adapter.HTTPAddress, 2*time.Second, cfg.Adapter.ProbeTTL)

	services := service.NewClientServices(localStorage.Slots, serverAdapter, oracle, cfg.Adapter, log)

	app, err := client.NewApp(services, localStorage, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
