package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/helabhl/bank-churn-mlops/client"
	"github.com/helabhl/bank-churn-mlops/config"
	"github.com/helabhl/bank-churn-mlops/handlers"
	"github.com/helabhl/bank-churn-mlops/routes"
	"github.com/helabhl/bank-churn-mlops/services"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg := config.Load()

	// Shared API client; the base URL travels with each request.
	apiClient := client.New(cfg.HTTPTimeout)

	serviceManager := services.NewServiceManager(apiClient)
	handlerManager := handlers.NewHandlerManager(serviceManager, cfg.APIURL)

	r := routes.SetupRoutes(handlerManager, log.Logger)

	log.Info().
		Str("port", cfg.Port).
		Str("api_url", cfg.APIURL).
		Msg("churn dashboard starting")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
