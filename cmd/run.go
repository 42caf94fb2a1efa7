package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"tokenbot/bot"
	"tokenbot/config"
	"tokenbot/database"
	"tokenbot/domain/events"
	"tokenbot/domain/services"
	"tokenbot/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting token bot...")

	cfg := config.Get()

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	eventBus := events.NewBus()
	registerEventSubscribers(eventBus)

	uowFactory := repository.NewUnitOfWorkFactory(db)

	// Shared across all guilds for the lifetime of the process
	quizManager := services.NewQuizSessionManager()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.GuildID,
	}, uowFactory, eventBus, quizManager, rng)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	log.Infof("Bot is running in %s mode", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	log.Info("Closing database connection...")
	db.Close()

	log.Info("Shutdown completed")
	return nil
}

// registerEventSubscribers wires the audit log onto the event bus
func registerEventSubscribers(bus *events.Bus) {
	bus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.BalanceChangeEvent)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"discord_id":       e.DiscordID,
			"guild_id":         e.GuildID,
			"transaction_type": e.TransactionType,
			"change_amount":    e.ChangeAmount,
			"new_balance":      e.NewBalance,
		}).Debug("Balance changed")
	})

	bus.Subscribe(events.EventTypeQuizResolved, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.QuizResolvedEvent)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"guild_id":   e.GuildID,
			"session_id": e.SessionID,
			"kind":       e.Kind,
			"winner":     e.WinnerDiscordID,
			"prize":      e.Prize,
		}).Info("Quiz resolved")
	})
}
