// @title AI Tutor API
// @version 1.0
// @description Backend for the adaptive tutoring platform: learner intake, AI-sequenced learning paths, generated content, and quiz-driven advancement.

// @host localhost:8080
// @BasePath /api

package main

import (
	"ai_tutor_backend/internal/app"
	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Migrations complete")
		return
	}

	application.Run()
}
