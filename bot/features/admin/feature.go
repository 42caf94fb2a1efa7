package admin

import (
	"tokenbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Feature handles owner-only commands
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
	f.handleGrant(s, i)
}
