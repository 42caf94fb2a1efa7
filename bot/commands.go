package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord.
// An empty GuildID registers them globally.
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your current token balance",
		},
		{
			Name:        "daily",
			Description: "Claim your daily token reward",
		},
		{
			Name:        "work",
			Description: "Do an honest shift for a small token payout",
		},
		{
			Name:        "flip",
			Description: "Wager tokens on a coin flip",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "stake",
					Description: "Amount of tokens to wager",
					Required:    true,
					MinValue:    &one,
				},
			},
		},
		{
			Name:        "shop",
			Description: "Browse the token shop",
		},
		{
			Name:        "buy",
			Description: "Buy an item from the shop",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "category",
					Description: "Shop category",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Roles", Value: "roles"},
						{Name: "Titles", Value: "titles"},
						{Name: "Pets", Value: "pets"},
						{Name: "Artifacts", Value: "artifacts"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "Item name",
					Required:    true,
				},
			},
		},
		{
			Name:        "inventory",
			Description: "See the items you own",
		},
		{
			Name:        "give",
			Description: "Give tokens to another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Player to give tokens to",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of tokens to give",
					Required:    true,
					MinValue:    &one,
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Show the richest players in this server",
		},
		{
			Name:        "quiz",
			Description: "Start a trivia quiz for the whole server",
		},
		{
			Name:        "grant",
			Description: "Grant tokens to a player (bot owners only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Player to grant tokens to",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of tokens to grant",
					Required:    true,
					MinValue:    &one,
				},
			},
		},
	}

	for _, command := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, command); err != nil {
			return fmt.Errorf("failed to register command %q: %w", command.Name, err)
		}
	}

	return nil
}

var one = float64(1)
