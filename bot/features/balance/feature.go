package balance

import (
	"tokenbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	uowFactory     interfaces.UnitOfWorkFactory
	eventPublisher interfaces.EventPublisher
}

func New(uowFactory interfaces.UnitOfWorkFactory, eventPublisher interfaces.EventPublisher) *Feature {
	return &Feature{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBalance(s, i)
}
