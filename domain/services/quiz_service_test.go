package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tokenbot/config"
	"tokenbot/domain/entities"
	"tokenbot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupQuizTest(t *testing.T) (*QuizSessionManager, *testhelpers.MockAccountRepository, *testhelpers.MockQuizQuestionRepository, *testhelpers.MockBalanceHistoryRepository, *testhelpers.MockEventPublisher) {
	config.SetTestConfig(config.NewTestConfig())
	t.Cleanup(config.ResetConfig)

	return NewQuizSessionManager(),
		&testhelpers.MockAccountRepository{},
		&testhelpers.MockQuizQuestionRepository{},
		&testhelpers.MockBalanceHistoryRepository{},
		&testhelpers.MockEventPublisher{}
}

func TestQuizService_StartQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("starts a session", func(t *testing.T) {
		manager, accountRepo, questionRepo, historyRepo, publisher := setupQuizTest(t)
		service := NewQuizService(manager, accountRepo, questionRepo, historyRepo, publisher)

		accountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(nil, nil)
		questionRepo.On("GetRandom", ctx).Return(testQuestion(), nil)
		publisher.On("Publish", mock.AnythingOfType("events.QuizStartedEvent")).Return(nil)

		session, err := service.StartQuiz(ctx, 100, 123456, false)
		require.NoError(t, err)

		assert.Equal(t, "What is the capital of France?", session.Question)
		assert.NotNil(t, manager.ActiveSession(100))
	})

	t.Run("cooldown gates repeat starts", func(t *testing.T) {
		manager, accountRepo, questionRepo, historyRepo, publisher := setupQuizTest(t)
		service := NewQuizService(manager, accountRepo, questionRepo, historyRepo, publisher)

		lastQuiz := time.Now().Add(-10 * time.Minute)
		account := &entities.Account{DiscordID: 123456, GuildID: 100, LastQuiz: &lastQuiz}
		accountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(account, nil)

		_, err := service.StartQuiz(ctx, 100, 123456, false)
		require.Error(t, err)
		assert.True(t, entities.IsCooldownActive(err))
		questionRepo.AssertNotCalled(t, "GetRandom", mock.Anything)
	})

	t.Run("bypass skips the cooldown gate", func(t *testing.T) {
		manager, accountRepo, questionRepo, historyRepo, publisher := setupQuizTest(t)
		service := NewQuizService(manager, accountRepo, questionRepo, historyRepo, publisher)

		questionRepo.On("GetRandom", ctx).Return(testQuestion(), nil)
		publisher.On("Publish", mock.Anything).Return(nil)

		_, err := service.StartQuiz(ctx, 100, 123456, true)
		require.NoError(t, err)
		accountRepo.AssertNotCalled(t, "GetByDiscordID", mock.Anything, mock.Anything)
	})

	t.Run("second start while live fails", func(t *testing.T) {
		manager, accountRepo, questionRepo, historyRepo, publisher := setupQuizTest(t)
		service := NewQuizService(manager, accountRepo, questionRepo, historyRepo, publisher)

		accountRepo.On("GetByDiscordID", ctx, mock.AnythingOfType("int64")).Return(nil, nil)
		questionRepo.On("GetRandom", ctx).Return(testQuestion(), nil)
		publisher.On("Publish", mock.Anything).Return(nil)

		_, err := service.StartQuiz(ctx, 100, 123456, false)
		require.NoError(t, err)

		_, err = service.StartQuiz(ctx, 100, 789012, false)
		assert.ErrorIs(t, err, entities.ErrQuizAlreadyActive)
	})
}

func TestQuizService_SubmitAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("no live session", func(t *testing.T) {
		manager, accountRepo, questionRepo, historyRepo, publisher := setupQuizTest(t)
		service := NewQuizService(manager, accountRepo, questionRepo, historyRepo, publisher)

		resolution, err := service.SubmitAnswer(ctx, 100, 789012, "answerer", "paris")
		require.NoError(t, err)
		assert.Nil(t, resolution)
	})

	t.Run("wrong answer does not resolve", func(t *testing.T) {
		manager, accountRepo, questionRepo, historyRepo, publisher := setupQuizTest(t)
		service := NewQuizService(manager, accountRepo, questionRepo, historyRepo, publisher)

		_, err := manager.StartSession(100, 123456, testQuestion())
		require.NoError(t, err)

		resolution, err := service.SubmitAnswer(ctx, 100, 789012, "answerer", "london")
		require.NoError(t, err)
		assert.Nil(t, resolution)
		assert.NotNil(t, manager.ActiveSession(100))
		accountRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("winning answer pays the answerer and stamps the starter", func(t *testing.T) {
		manager, accountRepo, questionRepo, historyRepo, publisher := setupQuizTest(t)
		service := NewQuizService(manager, accountRepo, questionRepo, historyRepo, publisher)

		_, err := manager.StartSession(100, 123456, testQuestion())
		require.NoError(t, err)

		winner := &entities.Account{DiscordID: 789012, GuildID: 100, Balance: 500}
		accountRepo.On("GetOrCreate", ctx, int64(789012), "answerer").Return(winner, nil)
		accountRepo.On("AdjustBalance", ctx, int64(789012), int64(50000)).Return(int64(50500), nil)
		// Cooldown lands on the starter, never the winner
		accountRepo.On("SetLastQuiz", ctx, int64(123456), mock.AnythingOfType("time.Time")).Return(nil)
		historyRepo.On("Record", ctx, mock.MatchedBy(func(h *entities.BalanceHistory) bool {
			return h.TransactionType == entities.TransactionTypeQuizPrize && h.ChangeAmount == 50000
		})).Return(nil)
		publisher.On("Publish", mock.Anything).Return(nil)

		resolution, err := service.SubmitAnswer(ctx, 100, 789012, "answerer", "I think it's Paris")
		require.NoError(t, err)
		require.NotNil(t, resolution)

		assert.Equal(t, entities.QuizResolvedByAnswer, resolution.Kind)
		assert.Equal(t, int64(789012), resolution.WinnerDiscordID)
		accountRepo.AssertExpectations(t)
		historyRepo.AssertExpectations(t)
	})

	t.Run("persistence failure puts the session back", func(t *testing.T) {
		manager, accountRepo, questionRepo, historyRepo, publisher := setupQuizTest(t)
		service := NewQuizService(manager, accountRepo, questionRepo, historyRepo, publisher)

		session, err := manager.StartSession(100, 123456, testQuestion())
		require.NoError(t, err)

		winner := &entities.Account{DiscordID: 789012, GuildID: 100, Balance: 500}
		accountRepo.On("GetOrCreate", ctx, int64(789012), "answerer").Return(winner, nil)
		accountRepo.On("AdjustBalance", ctx, int64(789012), int64(50000)).
			Return(int64(0), errors.New("connection reset"))

		resolution, err := service.SubmitAnswer(ctx, 100, 789012, "answerer", "paris")
		require.Error(t, err)
		assert.Nil(t, resolution)

		// The claim is undone: the same session is live again and can still
		// be answered or expired
		live := manager.ActiveSession(100)
		require.NotNil(t, live)
		assert.Equal(t, session.ID, live.ID)
		historyRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})
}

func TestQuizService_ExpireSession(t *testing.T) {
	ctx := context.Background()

	t.Run("expires a live session without paying anyone", func(t *testing.T) {
		manager, accountRepo, questionRepo, historyRepo, publisher := setupQuizTest(t)
		service := NewQuizService(manager, accountRepo, questionRepo, historyRepo, publisher)

		session, err := manager.StartSession(100, 123456, testQuestion())
		require.NoError(t, err)

		publisher.On("Publish", mock.AnythingOfType("events.QuizResolvedEvent")).Return(nil)

		resolution, err := service.ExpireSession(ctx, 100, session.ID)
		require.NoError(t, err)
		require.NotNil(t, resolution)

		assert.Equal(t, entities.QuizResolvedByTimeout, resolution.Kind)
		accountRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
		accountRepo.AssertNotCalled(t, "SetLastQuiz", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("late expiry after resolution is a no-op", func(t *testing.T) {
		manager, accountRepo, questionRepo, historyRepo, publisher := setupQuizTest(t)
		service := NewQuizService(manager, accountRepo, questionRepo, historyRepo, publisher)

		session, err := manager.StartSession(100, 123456, testQuestion())
		require.NoError(t, err)
		require.NotNil(t, manager.ClaimWin(100, 789012, "paris"))

		resolution, err := service.ExpireSession(ctx, 100, session.ID)
		require.NoError(t, err)
		assert.Nil(t, resolution)
		publisher.AssertNotCalled(t, "Publish", mock.Anything)
	})
}
