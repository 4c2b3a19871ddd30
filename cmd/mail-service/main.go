package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mchexpo/fairhall-contracts/internal/config"
	"github.com/mchexpo/fairhall-contracts/internal/logger"
	"github.com/mchexpo/fairhall-contracts/internal/mail"
)

func main() {
	cfg, err := config.LoadMail()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	var sender mail.Sender
	if cfg.SimulationMode {
		sender = mail.NewSimulationSender(log)
	} else {
		sender = mail.NewSMTPSender(cfg.SMTP)
	}

	handler := mail.NewHandler(sender, mail.NewMemoryStore(), cfg.DefaultFrom, cfg.SimulationMode, log)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	handler.Register(router)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Bool("simulation", cfg.SimulationMode).Msg("starting mail service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
