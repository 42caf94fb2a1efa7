package shop

import (
	"tokenbot/domain/entities"
	"tokenbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the shop commands: shop, buy and inventory
type Feature struct {
	uowFactory     interfaces.UnitOfWorkFactory
	eventPublisher interfaces.EventPublisher
	catalog        *entities.Catalog
}

func New(uowFactory interfaces.UnitOfWorkFactory, eventPublisher interfaces.EventPublisher, catalog *entities.Catalog) *Feature {
	return &Feature{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		catalog:        catalog,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "shop":
		f.handleShop(s, i)
	case "buy":
		f.handleBuy(s, i)
	case "inventory":
		f.handleInventory(s, i)
	}
}
