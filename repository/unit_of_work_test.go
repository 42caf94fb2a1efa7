package repository

import (
	"context"
	"sync"
	"testing"

	"tokenbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	factory := NewUnitOfWorkFactory(testDB.DB)
	ctx := context.Background()

	t.Run("commit persists writes", func(t *testing.T) {
		uow := factory.CreateForGuild(testGuildID)
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		_, err := uow.AccountRepository().GetOrCreate(ctx, 123456, "committed")
		require.NoError(t, err)
		_, err = uow.AccountRepository().AdjustBalance(ctx, 123456, 1000)
		require.NoError(t, err)
		require.NoError(t, uow.Commit())

		repo := NewAccountRepository(testDB.DB, testGuildID)
		account, err := repo.GetByDiscordID(ctx, 123456)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, int64(1000), account.Balance)
	})

	t.Run("rollback discards writes", func(t *testing.T) {
		uow := factory.CreateForGuild(testGuildID)
		require.NoError(t, uow.Begin(ctx))

		_, err := uow.AccountRepository().GetOrCreate(ctx, 789012, "discarded")
		require.NoError(t, err)
		require.NoError(t, uow.Rollback())

		repo := NewAccountRepository(testDB.DB, testGuildID)
		account, err := repo.GetByDiscordID(ctx, 789012)
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("rollback after commit is a no-op", func(t *testing.T) {
		uow := factory.CreateForGuild(testGuildID)
		require.NoError(t, uow.Begin(ctx))

		_, err := uow.AccountRepository().GetOrCreate(ctx, 333333, "safe")
		require.NoError(t, err)
		require.NoError(t, uow.Commit())
		require.NoError(t, uow.Rollback())
	})

	t.Run("repositories panic before Begin", func(t *testing.T) {
		uow := factory.CreateForGuild(testGuildID)
		assert.Panics(t, func() {
			uow.AccountRepository()
		})
	})
}

// Two concurrent spends of the same full balance must serialize on the row
// lock: exactly one passes the funds check, and no tokens are minted.
func TestUnitOfWork_LockedReadSerializesSpends(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	factory := NewUnitOfWorkFactory(testDB.DB)
	ctx := context.Background()

	const (
		senderID    = int64(111111)
		recipientID = int64(222222)
		amount      = int64(1000)
	)

	repo := NewAccountRepository(testDB.DB, testGuildID)
	_, err := repo.GetOrCreate(ctx, senderID, "sender")
	require.NoError(t, err)
	_, err = repo.GetOrCreate(ctx, recipientID, "recipient")
	require.NoError(t, err)
	_, err = repo.AdjustBalance(ctx, senderID, amount)
	require.NoError(t, err)

	spend := func() (bool, error) {
		uow := factory.CreateForGuild(testGuildID)
		if err := uow.Begin(ctx); err != nil {
			return false, err
		}
		defer uow.Rollback()

		sender, err := uow.AccountRepository().GetByDiscordIDForUpdate(ctx, senderID)
		if err != nil {
			return false, err
		}
		if !sender.HasSufficientBalance(amount) {
			return false, uow.Commit()
		}

		if _, err := uow.AccountRepository().AdjustBalance(ctx, senderID, -amount); err != nil {
			return false, err
		}
		if _, err := uow.AccountRepository().AdjustBalance(ctx, recipientID, amount); err != nil {
			return false, err
		}
		return true, uow.Commit()
	}

	type outcome struct {
		spent bool
		err   error
	}

	var wg sync.WaitGroup
	results := make(chan outcome, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			spent, err := spend()
			results <- outcome{spent: spent, err: err}
		}()
	}
	wg.Wait()
	close(results)

	var spends int
	for res := range results {
		require.NoError(t, res.err)
		if res.spent {
			spends++
		}
	}
	assert.Equal(t, 1, spends)

	sender, err := repo.GetByDiscordID(ctx, senderID)
	require.NoError(t, err)
	recipient, err := repo.GetByDiscordID(ctx, recipientID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), sender.Balance)
	assert.Equal(t, amount, recipient.Balance)
	assert.Equal(t, amount, sender.Balance+recipient.Balance)
}
