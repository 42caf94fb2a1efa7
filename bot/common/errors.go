package common

import (
	"errors"
	"fmt"

	"tokenbot/domain/entities"
	"tokenbot/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// RespondWithError sends an ephemeral error message as an interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// Respond sends a plain message as an interaction response
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Errorf("Error sending response: %v", err)
	}
}

// RespondEphemeral sends a message only the invoking user can see
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending ephemeral response: %v", err)
	}
}

// UserMessage translates domain errors into messages fit for Discord users.
// Unrecognized errors get a generic message so internals never leak into chat.
func UserMessage(err error) string {
	var insufficientFunds *entities.InsufficientFundsError
	if errors.As(err, &insufficientFunds) {
		return fmt.Sprintf("You don't have enough tokens. You have %s but need %s.",
			utils.FormatTokens(insufficientFunds.Have), utils.FormatTokens(insufficientFunds.Need))
	}

	var cooldown *entities.CooldownActiveError
	if errors.As(err, &cooldown) {
		return fmt.Sprintf("You can't do that yet. Try again in %s.", FormatDuration(cooldown.Remaining))
	}

	switch {
	case errors.Is(err, entities.ErrInvalidAmount):
		return "Amount must be positive."
	case errors.Is(err, entities.ErrSelfTransfer):
		return "You cannot transfer tokens to yourself."
	case errors.Is(err, entities.ErrUnknownItem):
		return "That item isn't in the shop. Check `/shop` for what's available."
	case errors.Is(err, entities.ErrUnknownCategory):
		return "Unknown shop category. Valid categories are roles, titles, pets and artifacts."
	case errors.Is(err, entities.ErrQuizAlreadyActive):
		return "A quiz is already running in this server. Answer it first!"
	case errors.Is(err, entities.ErrAccountNotFound):
		return "You don't have an account yet. Use `/daily` or `/work` to get started."
	default:
		return "Something went wrong. Please try again later."
	}
}
