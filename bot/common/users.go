package common

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// InteractionIDs are the parsed numeric IDs every handler needs
type InteractionIDs struct {
	GuildID  int64
	UserID   int64
	Username string
}

// ParseInteractionIDs extracts guild and invoker IDs from an interaction.
// Commands are guild-only, so a missing member means the command came from a
// DM and is rejected.
func ParseInteractionIDs(i *discordgo.InteractionCreate) (*InteractionIDs, error) {
	if i.Member == nil || i.Member.User == nil {
		return nil, fmt.Errorf("interaction has no guild member")
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse guild ID %q: %w", i.GuildID, err)
	}

	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user ID %q: %w", i.Member.User.ID, err)
	}

	return &InteractionIDs{
		GuildID:  guildID,
		UserID:   userID,
		Username: i.Member.User.Username,
	}, nil
}
