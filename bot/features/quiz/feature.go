package quiz

import (
	"tokenbot/domain/interfaces"
	"tokenbot/domain/services"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the quiz command and watches chat for answers while a
// session is live.
type Feature struct {
	uowFactory     interfaces.UnitOfWorkFactory
	eventPublisher interfaces.EventPublisher
	manager        *services.QuizSessionManager
}

func New(uowFactory interfaces.UnitOfWorkFactory, eventPublisher interfaces.EventPublisher, manager *services.QuizSessionManager) *Feature {
	return &Feature{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		manager:        manager,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleQuiz(s, i)
}
