package main

import (
	"github.com/rs/zerolog/log"

	"github.com/insider-navs/backend/internal/server"
)

// @title Insider Navs API
// @version 1.0
// @description Faculty directory backend with locations, availability tracking and flash news.

// @contact.name Insider Navs Team

// @host localhost:8000
// @BasePath /api
func main() {
	srv, err := server.NewServer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server run failed")
	}
}
