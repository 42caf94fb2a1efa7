package shop

import (
	"context"

	"tokenbot/bot/common"
	"tokenbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleShop renders the catalog. No database access is needed.
func (f *Feature) handleShop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	common.RespondEphemeral(s, i, common.FormatShopCatalog(f.catalog))
}

func (f *Feature) handleBuy(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var category, itemName string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "category":
			category = opt.StringValue()
		case "item":
			itemName = opt.StringValue()
		}
	}
	if category == "" || itemName == "" {
		common.RespondWithError(s, i, "Please provide both a category and an item name.")
		return
	}

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

	if _, err := uow.AccountRepository().GetOrCreate(ctx, ids.UserID, ids.Username); err != nil {
		log.Errorf("Error ensuring account for %d: %v", ids.UserID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	shopService := services.NewShopService(
		uow.AccountRepository(),
		uow.InventoryRepository(),
		uow.BalanceHistoryRepository(),
		f.eventPublisher,
		f.catalog,
	)

	result, err := shopService.Purchase(ctx, ids.UserID, category, itemName)
	if err != nil {
		log.Debugf("Purchase rejected for %d: %v", ids.UserID, err)
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.Respond(s, i, common.FormatPurchaseResult(result))
}

func (f *Feature) handleInventory(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	items, err := uow.InventoryRepository().ListByUser(ctx, ids.UserID)
	if err != nil {
		log.Errorf("Error listing inventory for %d: %v", ids.UserID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondEphemeral(s, i, common.FormatInventory(items))
}
