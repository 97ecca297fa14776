package main

import (
	"fmt"

	"github.com/akarimov/study-keeper/internal/config"
	handler "github.com/akarimov/study-keeper/internal/handler/http"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/server"
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

	log := logger.NewLogger("study-server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.DocumentPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.App, log)

	handlers := handler.NewHandler(services, log)

	srv := server.NewServer(handlers, cfg, log)
	srv.RunServer()
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
