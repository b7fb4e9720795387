package main

import (
	"os"

	"meetup-planner/core/logger"
	"meetup-planner/core/server"
)

// @title Meetup Planner API
// @version 1.0
// @description Finds a time a group can meet, ranks venues and drafts WhatsApp invitations.

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
		os.Exit(1)
	}
}
