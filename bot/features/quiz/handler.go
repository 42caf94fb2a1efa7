package quiz

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tokenbot/bot/common"
	"tokenbot/config"
	"tokenbot/domain/services"
	"tokenbot/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleQuiz(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	cfg := config.Get()

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

	quizService := services.NewQuizService(
		f.manager,
		uow.AccountRepository(),
		uow.QuizQuestionRepository(),
		uow.BalanceHistoryRepository(),
		f.eventPublisher,
	)

	// Owners can fire off quizzes freely for events
	bypassCooldown := cfg.IsOwner(ids.UserID)

	session, err := quizService.StartQuiz(ctx, ids.GuildID, ids.UserID, bypassCooldown)
	if err != nil {
		log.Debugf("Quiz start rejected for %d: %v", ids.UserID, err)
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		// The session went live in memory before the commit; drop it or the
		// guild stays locked behind a quiz nobody was told about
		f.manager.Abort(ids.GuildID, session.ID)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// The timer races against answers in chat; whichever claims the session
	// first wins, the other is a no-op. Armed before responding so the
	// session can always expire even if the announcement fails.
	f.scheduleExpiry(s, i.ChannelID, ids.GuildID, session.ID, cfg.QuizTimeout)

	common.Respond(s, i, fmt.Sprintf(
		"🧠 **Quiz time!** First correct answer in chat wins **%s**.\n\n> %s\n\nYou have %d seconds!",
		utils.FormatTokens(cfg.QuizPrize), session.Question, int(cfg.QuizTimeout.Seconds())))
}

func (f *Feature) scheduleExpiry(s *discordgo.Session, channelID string, guildID int64, sessionID string, timeout time.Duration) {
	time.AfterFunc(timeout, func() {
		ctx := context.Background()

		uow := f.uowFactory.CreateForGuild(guildID)
		if err := uow.Begin(ctx); err != nil {
			log.Errorf("Error beginning expiry transaction: %v", err)
			return
		}
		defer uow.Rollback()

		quizService := services.NewQuizService(
			f.manager,
			uow.AccountRepository(),
			uow.QuizQuestionRepository(),
			uow.BalanceHistoryRepository(),
			f.eventPublisher,
		)

		resolution, err := quizService.ExpireSession(ctx, guildID, sessionID)
		if err != nil {
			log.Errorf("Error expiring quiz session %s: %v", sessionID, err)
			return
		}
		if resolution == nil {
			// Already answered
			return
		}

		if err := uow.Commit(); err != nil {
			log.Errorf("Error committing expiry transaction: %v", err)
			return
		}

		message := fmt.Sprintf("⏰ Time's up! Nobody got it. The answer was **%s**.", resolution.Session.Answer)
		if _, err := s.ChannelMessageSend(channelID, message); err != nil {
			log.Errorf("Error announcing quiz expiry: %v", err)
		}
	})
}

// HandleMessage checks guild chatter against the live quiz session, if any.
// Called for every message, so it bails out before touching the database
// unless a session is actually live.
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		return
	}
	if f.manager.ActiveSession(guildID) == nil {
		return
	}

	userID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		return
	}

	ctx := context.Background()
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning answer transaction: %v", err)
		return
	}
	defer uow.Rollback()

	quizService := services.NewQuizService(
		f.manager,
		uow.AccountRepository(),
		uow.QuizQuestionRepository(),
		uow.BalanceHistoryRepository(),
		f.eventPublisher,
	)

	resolution, err := quizService.SubmitAnswer(ctx, guildID, userID, m.Author.Username, m.Content)
	if err != nil {
		log.Errorf("Error submitting quiz answer from %d: %v", userID, err)
		return
	}
	if resolution == nil {
		// Wrong answer or lost the race
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing quiz win: %v", err)
		// Nothing persisted, so put the session back; the quiz stays
		// answerable and its expiry timer can still resolve it
		f.manager.Reinstate(resolution.Session)
		return
	}

	cfg := config.Get()
	message := fmt.Sprintf("🎉 <@%d> got it! The answer was **%s**. You win **%s**!",
		userID, resolution.Session.Answer, utils.FormatTokens(cfg.QuizPrize))
	if _, err := s.ChannelMessageSend(m.ChannelID, message); err != nil {
		log.Errorf("Error announcing quiz winner: %v", err)
	}
}
