package balance

import (
	"context"
	"fmt"

	"tokenbot/bot/common"
	"tokenbot/domain/services"
	"tokenbot/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	ids, err := common.ParseInteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.CreateForGuild(ids.GuildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	userService := services.NewUserService(
		uow.AccountRepository(),
		uow.BalanceHistoryRepository(),
		f.eventPublisher,
	)

	account, err := userService.GetOrCreateAccount(ctx, ids.UserID, ids.Username)
	if err != nil {
		log.Errorf("Error getting account for %d: %v", ids.UserID, err)
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondEphemeral(s, i, fmt.Sprintf("💰 Your balance is **%s**.", utils.FormatTokens(account.Balance)))
}
