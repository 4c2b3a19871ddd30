package main

import (
	"fmt"
	"os"

	"github.com/mchexpo/fairhall-contracts/internal/artifact"
	"github.com/mchexpo/fairhall-contracts/internal/client"
	"github.com/mchexpo/fairhall-contracts/internal/config"
	"github.com/mchexpo/fairhall-contracts/internal/excel"
	httphandler "github.com/mchexpo/fairhall-contracts/internal/http"
	"github.com/mchexpo/fairhall-contracts/internal/logger"
	"github.com/mchexpo/fairhall-contracts/internal/pdf"
	"github.com/mchexpo/fairhall-contracts/internal/register"
	"github.com/mchexpo/fairhall-contracts/internal/workflow"
)

func main() {
	cfg, err := config.LoadContracts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	artifacts, err := artifact.NewStore(cfg.ArtifactsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init artifact store")
	}

	renderer := pdf.NewRenderer(pdf.NewGenerator(), artifacts)
	contracts := register.NewMemoryStore()

	availability := client.NewAvailabilityClient(cfg.FairServiceURL, cfg.ClientTimeout, log)
	directory := client.NewDirectoryClient(cfg.DirectoryURL, cfg.ClientTimeout)
	notifier := client.NewMailClient(cfg.MailServiceURL, cfg.ClientTimeout)

	orchestrator := workflow.NewOrchestrator(
		availability, directory, renderer, notifier,
		contracts, cfg.FallbackContact, log,
	)

	handler := httphandler.NewHandler(orchestrator, artifacts, contracts, excel.NewGenerator(), log)
	router := httphandler.NewRouter(handler, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting contracts service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
