package economy

import (
	"context"

	"tokenbot/bot/common"
	"tokenbot/domain/interfaces"
	"tokenbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// withEconomyService runs fn against a committed unit of work. The account is
// created lazily so first-time users can claim rewards without setup.
func (f *Feature) withEconomyService(s *discordgo.Session, i *discordgo.InteractionCreate, fn func(ctx context.Context, svc interfaces.EconomyService, ids *common.InteractionIDs) (string, error)) {
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

	if _, err := uow.AccountRepository().GetOrCreate(ctx, ids.UserID, ids.Username); err != nil {
		log.Errorf("Error ensuring account for %d: %v", ids.UserID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	economyService := services.NewEconomyService(
		uow.AccountRepository(),
		uow.InventoryRepository(),
		uow.BalanceHistoryRepository(),
		f.eventPublisher,
		f.catalog,
		f.rng,
	)

	message, err := fn(ctx, economyService, ids)
	if err != nil {
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.Respond(s, i, message)
}

func (f *Feature) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.withEconomyService(s, i, func(ctx context.Context, svc interfaces.EconomyService, ids *common.InteractionIDs) (string, error) {
		result, err := svc.ClaimDaily(ctx, ids.UserID)
		if err != nil {
			log.Debugf("Daily claim rejected for %d: %v", ids.UserID, err)
			return "", err
		}
		return common.FormatDailyResult(result), nil
	})
}

func (f *Feature) handleFlip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) != 1 {
		common.RespondWithError(s, i, "Please provide a stake amount.")
		return
	}
	stake := options[0].IntValue()

	f.withEconomyService(s, i, func(ctx context.Context, svc interfaces.EconomyService, ids *common.InteractionIDs) (string, error) {
		result, err := svc.FlipCoin(ctx, ids.UserID, stake)
		if err != nil {
			log.Debugf("Flip rejected for %d: %v", ids.UserID, err)
			return "", err
		}
		return common.FormatFlipResult(result), nil
	})
}

func (f *Feature) handleWork(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.withEconomyService(s, i, func(ctx context.Context, svc interfaces.EconomyService, ids *common.InteractionIDs) (string, error) {
		result, err := svc.Work(ctx, ids.UserID)
		if err != nil {
			return "", err
		}
		return common.FormatWorkResult(result), nil
	})
}
