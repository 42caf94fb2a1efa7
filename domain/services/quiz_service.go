package services

import (
	"context"
	"fmt"
	"time"

	"tokenbot/config"
	"tokenbot/domain/entities"
	"tokenbot/domain/events"
	"tokenbot/domain/interfaces"
	"tokenbot/domain/utils"
)

type quizService struct {
	manager            *QuizSessionManager
	accountRepo        interfaces.AccountRepository
	questionRepo       interfaces.QuizQuestionRepository
	balanceHistoryRepo interfaces.BalanceHistoryRepository
	eventPublisher     interfaces.EventPublisher
}

// NewQuizService creates a quiz service over the shared session manager.
// The manager outlives individual requests; the repositories come from the
// caller's unit of work.
func NewQuizService(
	manager *QuizSessionManager,
	accountRepo interfaces.AccountRepository,
	questionRepo interfaces.QuizQuestionRepository,
	balanceHistoryRepo interfaces.BalanceHistoryRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.QuizService {
	return &quizService{
		manager:            manager,
		accountRepo:        accountRepo,
		questionRepo:       questionRepo,
		balanceHistoryRepo: balanceHistoryRepo,
		eventPublisher:     eventPublisher,
	}
}

func (s *quizService) StartQuiz(ctx context.Context, guildID, starterDiscordID int64, bypassCooldown bool) (*entities.QuizSession, error) {
	cfg := config.Get()

	if !bypassCooldown {
		account, err := s.accountRepo.GetByDiscordID(ctx, starterDiscordID)
		if err != nil {
			return nil, fmt.Errorf("failed to get starter account: %w", err)
		}
		now := time.Now()
		if account != nil && !account.CanStartQuiz(now, cfg.QuizCooldown) {
			return nil, &entities.CooldownActiveError{
				Operation: "quiz",
				Remaining: account.QuizCooldownRemaining(now, cfg.QuizCooldown),
			}
		}
	}

	question, err := s.questionRepo.GetRandom(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to draw quiz question: %w", err)
	}

	session, err := s.manager.StartSession(guildID, starterDiscordID, question)
	if err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(events.QuizStartedEvent{
		GuildID:          guildID,
		SessionID:        session.ID,
		StarterDiscordID: starterDiscordID,
	}); err != nil {
		return session, nil
	}

	return session, nil
}

// SubmitAnswer races the submission against the live session. The winning
// submission credits the prize to the answerer and stamps the quiz cooldown
// against the session starter, never the winner. If persistence fails after
// the claim, the session is reinstated so the quiz stays answerable and the
// caller rolls the transaction back.
func (s *quizService) SubmitAnswer(ctx context.Context, guildID, userDiscordID int64, username, text string) (*entities.QuizResolution, error) {
	resolution := s.manager.ClaimWin(guildID, userDiscordID, text)
	if resolution == nil {
		return nil, nil
	}

	cfg := config.Get()

	winner, err := s.accountRepo.GetOrCreate(ctx, userDiscordID, username)
	if err != nil {
		s.manager.Reinstate(resolution.Session)
		return nil, fmt.Errorf("failed to get winner account: %w", err)
	}

	newBalance, err := s.accountRepo.AdjustBalance(ctx, userDiscordID, cfg.QuizPrize)
	if err != nil {
		s.manager.Reinstate(resolution.Session)
		return nil, fmt.Errorf("failed to credit quiz prize: %w", err)
	}

	if err := s.accountRepo.SetLastQuiz(ctx, resolution.Session.StarterDiscordID, resolution.ResolvedAt); err != nil {
		s.manager.Reinstate(resolution.Session)
		return nil, fmt.Errorf("failed to record quiz cooldown: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:       userDiscordID,
		GuildID:         guildID,
		BalanceBefore:   winner.Balance,
		BalanceAfter:    newBalance,
		ChangeAmount:    cfg.QuizPrize,
		TransactionType: entities.TransactionTypeQuizPrize,
		TransactionMetadata: map[string]any{
			"session_id": resolution.Session.ID,
			"starter_id": resolution.Session.StarterDiscordID,
		},
	}
	if err := utils.RecordBalanceChange(ctx, s.balanceHistoryRepo, s.eventPublisher, history); err != nil {
		s.manager.Reinstate(resolution.Session)
		return nil, fmt.Errorf("failed to record quiz prize: %w", err)
	}

	if err := s.eventPublisher.Publish(events.QuizResolvedEvent{
		GuildID:         guildID,
		SessionID:       resolution.Session.ID,
		Kind:            resolution.Kind,
		WinnerDiscordID: userDiscordID,
		Prize:           cfg.QuizPrize,
	}); err != nil {
		return resolution, nil
	}

	return resolution, nil
}

// ExpireSession resolves the session by timeout. No prize is credited and the
// starter's cooldown is left untouched on this path.
func (s *quizService) ExpireSession(ctx context.Context, guildID int64, sessionID string) (*entities.QuizResolution, error) {
	resolution := s.manager.ClaimTimeout(guildID, sessionID)
	if resolution == nil {
		return nil, nil
	}

	if err := s.eventPublisher.Publish(events.QuizResolvedEvent{
		GuildID:   guildID,
		SessionID: sessionID,
		Kind:      entities.QuizResolvedByTimeout,
	}); err != nil {
		return resolution, nil
	}

	return resolution, nil
}
