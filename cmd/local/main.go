package main

import (
	"log"
	"os"

	"github.com/invoxa/invoxa-api/constants"
	"github.com/invoxa/invoxa-api/logger"
	"github.com/invoxa/invoxa-api/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		// Use basic log before logger init.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = constants.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !constants.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, constants.StageProd, constants.StageDev, constants.StageLocal)
	}

	logger.InitLogger(stage)

	srv, err := server.New(server.Config{Stage: stage})
	if err != nil {
		logger.Log.Fatal("Failed to initialize server", zap.Error(err))
	}

	if err := srv.Run(); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
