package repository

import (
	"context"
	"testing"
	"time"

	"tokenbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGuildID = int64(555000111)

func TestAccountRepository_GetByDiscordID(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB, testGuildID)
	ctx := context.Background()

	t.Run("account not found", func(t *testing.T) {
		account, err := repo.GetByDiscordID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("account found", func(t *testing.T) {
		created, err := repo.GetOrCreate(ctx, 123456, "testuser")
		require.NoError(t, err)

		account, err := repo.GetByDiscordID(ctx, 123456)
		require.NoError(t, err)
		require.NotNil(t, account)

		assert.Equal(t, created.DiscordID, account.DiscordID)
		assert.Equal(t, testGuildID, account.GuildID)
		assert.Equal(t, "testuser", account.Username)
		assert.Equal(t, int64(0), account.Balance)
		assert.Nil(t, account.LastDaily)
		assert.Nil(t, account.LastQuiz)
	})

	t.Run("guild scoping", func(t *testing.T) {
		_, err := repo.GetOrCreate(ctx, 222222, "scoped")
		require.NoError(t, err)

		otherGuildRepo := NewAccountRepository(testDB.DB, testGuildID+1)
		account, err := otherGuildRepo.GetByDiscordID(ctx, 222222)
		require.NoError(t, err)
		assert.Nil(t, account)
	})
}

func TestAccountRepository_GetOrCreate(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB, testGuildID)
	ctx := context.Background()

	t.Run("creates with zero balance", func(t *testing.T) {
		account, err := repo.GetOrCreate(ctx, 123456, "newuser")
		require.NoError(t, err)
		require.NotNil(t, account)

		assert.Equal(t, int64(0), account.Balance)
		assert.False(t, account.CreatedAt.IsZero())
	})

	t.Run("idempotent and refreshes username", func(t *testing.T) {
		first, err := repo.GetOrCreate(ctx, 789012, "oldname")
		require.NoError(t, err)

		_, err = repo.AdjustBalance(ctx, 789012, 5000)
		require.NoError(t, err)

		second, err := repo.GetOrCreate(ctx, 789012, "newname")
		require.NoError(t, err)

		assert.Equal(t, first.DiscordID, second.DiscordID)
		assert.Equal(t, "newname", second.Username)
		assert.Equal(t, int64(5000), second.Balance)
	})
}

func TestAccountRepository_AdjustBalance(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB, testGuildID)
	ctx := context.Background()

	t.Run("credits and debits", func(t *testing.T) {
		_, err := repo.GetOrCreate(ctx, 123456, "testuser")
		require.NoError(t, err)

		balance, err := repo.AdjustBalance(ctx, 123456, 10000)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), balance)

		balance, err = repo.AdjustBalance(ctx, 123456, -4000)
		require.NoError(t, err)
		assert.Equal(t, int64(6000), balance)
	})

	t.Run("clamps at zero on overdraw", func(t *testing.T) {
		_, err := repo.GetOrCreate(ctx, 789012, "pooruser")
		require.NoError(t, err)

		_, err = repo.AdjustBalance(ctx, 789012, 100)
		require.NoError(t, err)

		balance, err := repo.AdjustBalance(ctx, 789012, -99999)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := repo.AdjustBalance(ctx, 424242, 100)
		assert.Error(t, err)
	})

	t.Run("concurrent adjustments sum correctly", func(t *testing.T) {
		_, err := repo.GetOrCreate(ctx, 333333, "concurrent")
		require.NoError(t, err)

		const workers = 10
		const perWorker = int64(100)
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			go func() {
				_, err := repo.AdjustBalance(ctx, 333333, perWorker)
				errs <- err
			}()
		}
		for i := 0; i < workers; i++ {
			require.NoError(t, <-errs)
		}

		account, err := repo.GetByDiscordID(ctx, 333333)
		require.NoError(t, err)
		assert.Equal(t, workers*perWorker, account.Balance)
	})
}

func TestAccountRepository_Timestamps(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB, testGuildID)
	ctx := context.Background()

	t.Run("set last daily", func(t *testing.T) {
		_, err := repo.GetOrCreate(ctx, 123456, "testuser")
		require.NoError(t, err)

		claimedAt := time.Now().UTC().Truncate(time.Millisecond)
		err = repo.SetLastDaily(ctx, 123456, claimedAt)
		require.NoError(t, err)

		account, err := repo.GetByDiscordID(ctx, 123456)
		require.NoError(t, err)
		require.NotNil(t, account.LastDaily)
		assert.WithinDuration(t, claimedAt, *account.LastDaily, time.Second)
	})

	t.Run("set last quiz", func(t *testing.T) {
		_, err := repo.GetOrCreate(ctx, 789012, "quizuser")
		require.NoError(t, err)

		startedAt := time.Now().UTC().Truncate(time.Millisecond)
		err = repo.SetLastQuiz(ctx, 789012, startedAt)
		require.NoError(t, err)

		account, err := repo.GetByDiscordID(ctx, 789012)
		require.NoError(t, err)
		require.NotNil(t, account.LastQuiz)
		assert.WithinDuration(t, startedAt, *account.LastQuiz, time.Second)
	})

	t.Run("unknown account errors", func(t *testing.T) {
		err := repo.SetLastDaily(ctx, 424242, time.Now())
		assert.Error(t, err)
	})
}

func TestAccountRepository_GetTopByBalance(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB, testGuildID)
	ctx := context.Background()

	accounts := map[int64]int64{
		1001: 500,
		1002: 9000,
		1003: 2500,
		1004: 0,
	}
	for discordID, balance := range accounts {
		_, err := repo.GetOrCreate(ctx, discordID, "user")
		require.NoError(t, err)
		if balance > 0 {
			_, err = repo.AdjustBalance(ctx, discordID, balance)
			require.NoError(t, err)
		}
	}

	top, err := repo.GetTopByBalance(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, int64(1002), top[0].DiscordID)
	assert.Equal(t, int64(1003), top[1].DiscordID)
	assert.Equal(t, int64(1001), top[2].DiscordID)
}
