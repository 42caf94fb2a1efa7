package bot

import (
	"fmt"
	"math/rand"

	"tokenbot/bot/features/admin"
	"tokenbot/bot/features/balance"
	"tokenbot/bot/features/economy"
	"tokenbot/bot/features/leaderboard"
	"tokenbot/bot/features/quiz"
	"tokenbot/bot/features/shop"
	"tokenbot/bot/features/transfer"
	"tokenbot/domain/entities"
	"tokenbot/domain/interfaces"
	"tokenbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

// Bot manages the Discord bot and all feature modules
type Bot struct {
	config         Config
	session        *discordgo.Session
	uowFactory     interfaces.UnitOfWorkFactory
	eventPublisher interfaces.EventPublisher

	// Feature modules
	balance     *balance.Feature
	economy     *economy.Feature
	shop        *shop.Feature
	transfer    *transfer.Feature
	leaderboard *leaderboard.Feature
	quiz        *quiz.Feature
	admin       *admin.Feature
}

// New creates a new bot instance with all features and opens the gateway
// connection. The quiz session manager and random source are shared across
// features and owned by the caller.
func New(config Config, uowFactory interfaces.UnitOfWorkFactory, eventPublisher interfaces.EventPublisher, quizManager *services.QuizSessionManager, rng *rand.Rand) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsAllWithoutPrivileged | discordgo.IntentsMessageContent

	catalog := entities.DefaultCatalog()

	bot := &Bot{
		config:         config,
		session:        dg,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}

	bot.balance = balance.New(uowFactory, eventPublisher)
	bot.economy = economy.New(uowFactory, eventPublisher, catalog, rng)
	bot.shop = shop.New(uowFactory, eventPublisher, catalog)
	bot.transfer = transfer.New(uowFactory, eventPublisher)
	bot.leaderboard = leaderboard.New(uowFactory, eventPublisher)
	bot.quiz = quiz.New(uowFactory, eventPublisher, quizManager)
	bot.admin = admin.New(uowFactory, eventPublisher)

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleMessageCreate)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	log.Info("Bot is running")
	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "balance":
		b.balance.HandleCommand(s, i)
	case "daily", "flip", "work":
		b.economy.HandleCommand(s, i)
	case "shop", "buy", "inventory":
		b.shop.HandleCommand(s, i)
	case "give":
		b.transfer.HandleCommand(s, i)
	case "leaderboard":
		b.leaderboard.HandleCommand(s, i)
	case "quiz":
		b.quiz.HandleCommand(s, i)
	case "grant":
		b.admin.HandleCommand(s, i)
	}
}

// handleMessageCreate feeds guild chatter to the quiz answer watcher
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.quiz.HandleMessage(s, m)
}
