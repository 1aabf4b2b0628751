package main

import (
	"os"

	_ "bizportal/docs"
	"bizportal/internal/adapter/http/routes"
	"bizportal/internal/infrastructure/config"
	"bizportal/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Business Portal API
// @version         1.0
// @description     Business customer portal: catalog, quote negotiation, order tracking, invoicing and support.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Setup("info", "json", os.Stderr)
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	if err := routes.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}
