package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pointsjack/internal/bot"
	"pointsjack/internal/config"
	"pointsjack/internal/database"
	"pointsjack/internal/game"
	"pointsjack/internal/player"
	"pointsjack/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.BotToken == "" {
		log.Fatalf("BOT_TOKEN is not set")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Database connected")

	games := game.NewManager(session.TableFactory(cfg.Rules, cfg.DefaultVisibility, nil))
	svc := session.NewService(games, player.NewRepository(db.DB))

	b, err := bot.New(cfg, svc)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
