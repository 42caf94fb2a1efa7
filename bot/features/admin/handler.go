package admin

import (
	"context"
	"fmt"
	"strconv"

	"tokenbot/bot/common"
	"tokenbot/config"
	"tokenbot/domain/services"
	"tokenbot/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleGrant(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	ids, err := common.ParseInteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if !config.Get().IsOwner(ids.UserID) {
		common.RespondWithError(s, i, "Only bot owners can grant tokens.")
		return
	}

	var amount int64
	var targetUser *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			targetUser = opt.UserValue(s)
		}
	}
	if targetUser == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	targetID, err := strconv.ParseInt(targetUser.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing target Discord ID %s: %v", targetUser.ID, err)
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

	if _, err := userService.GetOrCreateAccount(ctx, targetID, targetUser.Username); err != nil {
		log.Errorf("Error ensuring account for %d: %v", targetID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	newBalance, err := userService.Grant(ctx, targetID, amount)
	if err != nil {
		log.Debugf("Grant rejected for %d: %v", targetID, err)
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.Respond(s, i, fmt.Sprintf("✨ Granted **%s** to <@%d>. Their balance is now **%s**.",
		utils.FormatTokens(amount), targetID, utils.FormatTokens(newBalance)))
}
