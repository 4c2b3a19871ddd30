package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mchexpo/fairhall-contracts/internal/config"
	"github.com/mchexpo/fairhall-contracts/internal/fair"
	"github.com/mchexpo/fairhall-contracts/internal/logger"
)

func main() {
	cfg, err := config.LoadFair()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := fair.OpenDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	handler := fair.NewHandler(fair.NewRepository(database), log)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	handler.Register(router)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting fair service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
