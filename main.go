package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"parking-bot/config"
	"parking-bot/internal/api"
	"parking-bot/internal/bot"
	"parking-bot/internal/logging"
	"parking-bot/internal/session"
	"parking-bot/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	cfg := config.Load()

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	store, err := storage.NewSQLiteStorage(cfg.SessionDBPath)
	if err != nil {
		logger.Fatal("session storage init failed", zap.Error(err))
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		logger.Fatal("session schema init failed", zap.Error(err))
	}

	sess := session.NewManager(store, logger)
	client := api.NewClient(cfg.APIBaseURL, sess, logger)

	// Restore a persisted login if one exists; a rejected token just means
	// we start logged out.
	if err := sess.Init(context.Background(), client); err != nil {
		logger.Warn("session restore failed", zap.Error(err))
	}

	parkingBot, err := bot.New(cfg, client, sess, logger)
	if err != nil {
		logger.Fatal("bot init failed", zap.Error(err))
	}

	logger.Info("parking bot started")
	parkingBot.Start()
}
