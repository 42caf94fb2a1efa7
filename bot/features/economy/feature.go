package economy

import (
	"math/rand"

	"tokenbot/domain/entities"
	"tokenbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the reward commands: daily, flip and work
type Feature struct {
	uowFactory     interfaces.UnitOfWorkFactory
	eventPublisher interfaces.EventPublisher
	catalog        *entities.Catalog
	rng            *rand.Rand
}

func New(uowFactory interfaces.UnitOfWorkFactory, eventPublisher interfaces.EventPublisher, catalog *entities.Catalog, rng *rand.Rand) *Feature {
	return &Feature{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		catalog:        catalog,
		rng:            rng,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "daily":
		f.handleDaily(s, i)
	case "flip":
		f.handleFlip(s, i)
	case "work":
		f.handleWork(s, i)
	}
}
