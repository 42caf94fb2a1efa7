package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"tokenbot/cmd"
	"tokenbot/database"
	"tokenbot/domain/events"
	"tokenbot/domain/services"
	"tokenbot/domain/utils"
	"tokenbot/repository"

	log "github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := handleMigrationCommand(); err != nil {
			log.Fatalf("Migration error: %v", err)
		}
		return
	}

	if len(os.Args) > 1 && os.Args[1] == "grant" {
		if err := handleGrantCommand(); err != nil {
			log.Fatalf("Grant error: %v", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	if err := cmd.Run(ctx); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: tokenbot migrate [up|down|status] [args...]")
	}

	switch command := os.Args[2]; command {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(os.Args) > 3 {
			steps = os.Args[3]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}

// handleGrantCommand credits tokens to an existing account from the command
// line, bypassing Discord entirely. Useful for seeding and incident repair.
func handleGrantCommand() error {
	if len(os.Args) < 5 {
		return fmt.Errorf("usage: tokenbot grant <guild_id> <discord_id> <amount>")
	}

	guildID, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid guild ID %q: %w", os.Args[2], err)
	}
	discordID, err := strconv.ParseInt(os.Args[3], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid Discord ID %q: %w", os.Args[3], err)
	}
	amount, err := strconv.ParseInt(os.Args[4], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", os.Args[4], err)
	}

	// Like migrations, this reads the database env directly so no Discord
	// credentials are needed
	databaseURL := database.ConstructDatabaseURL(os.Getenv("DATABASE_URL"), os.Getenv("DATABASE_NAME"))

	ctx := context.Background()
	db, err := database.NewConnection(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	uow := repository.NewUnitOfWorkFactory(db).CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	userService := services.NewUserService(
		uow.AccountRepository(),
		uow.BalanceHistoryRepository(),
		events.NewBus(),
	)

	newBalance, err := userService.Grant(ctx, discordID, amount)
	if err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit grant: %w", err)
	}

	log.Infof("Granted %s to %d in guild %d, new balance %s",
		utils.FormatTokens(amount), discordID, guildID, utils.FormatTokens(newBalance))
	return nil
}
