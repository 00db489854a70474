package repository

import (
	"context"
	"testing"

	"bizsuite/internal/database"
	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccountRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewAccountRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates account", func(t *testing.T) {
		tdb.ClearCollection(t, database.AccountsCollection)

		account := &models.Account{
			Email:    "Test@Example.com ",
			Password: "hashedpassword",
			Name:     "Test User",
		}

		err := repo.Create(ctx, account)

		require.NoError(t, err)
		assert.False(t, account.ID.IsZero())
		assert.Equal(t, "test@example.com", account.Email)
		assert.NotZero(t, account.CreatedAt)
		assert.NotZero(t, account.UpdatedAt)
	})

	t.Run("returns error for duplicate email", func(t *testing.T) {
		tdb.ClearCollection(t, database.AccountsCollection)

		err := repo.Create(ctx, &models.Account{Email: "duplicate@example.com", Password: "x", Name: "One"})
		require.NoError(t, err)

		err = repo.Create(ctx, &models.Account{Email: "DUPLICATE@example.com", Password: "x", Name: "Two"})

		assert.Equal(t, apperrors.ErrAccountAlreadyExists, err)
	})
}

func TestAccountRepository_Find(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewAccountRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, database.AccountsCollection)
	account := &models.Account{Email: "find@example.com", Password: "x", Name: "Find Me", GlobalRoles: []string{"admin"}}
	require.NoError(t, repo.Create(ctx, account))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, account.ID)

		require.NoError(t, err)
		assert.Equal(t, account.Email, found.Email)
		assert.Equal(t, []string{"admin"}, found.GlobalRoles)
	})

	t.Run("finds by email ignoring case", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "FIND@example.com")

		require.NoError(t, err)
		assert.Equal(t, account.ID, found.ID)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrAccountNotFound, err)
	})

	t.Run("returns not found for unknown email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrAccountNotFound, err)
	})

	t.Run("finds many by ids", func(t *testing.T) {
		found, err := repo.FindByIDs(ctx, []primitive.ObjectID{account.ID, primitive.NewObjectID()})

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, account.ID, found[0].ID)
	})

	t.Run("empty id list returns empty slice", func(t *testing.T) {
		found, err := repo.FindByIDs(ctx, nil)

		require.NoError(t, err)
		assert.NotNil(t, found)
		assert.Empty(t, found)
	})
}

func TestAccountRepository_SetDefaultBusiness(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewAccountRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, database.AccountsCollection)
	account := &models.Account{Email: "default@example.com", Password: "x", Name: "Default"}
	require.NoError(t, repo.Create(ctx, account))
	businessID := primitive.NewObjectID()

	t.Run("sets default business", func(t *testing.T) {
		err := repo.SetDefaultBusiness(ctx, account.ID, &businessID)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, found.DefaultBusinessID)
		assert.Equal(t, businessID, *found.DefaultBusinessID)
	})

	t.Run("clears default business", func(t *testing.T) {
		err := repo.SetDefaultBusiness(ctx, account.ID, nil)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Nil(t, found.DefaultBusinessID)
	})

	t.Run("returns not found for unknown account", func(t *testing.T) {
		err := repo.SetDefaultBusiness(ctx, primitive.NewObjectID(), &businessID)

		assert.Equal(t, apperrors.ErrAccountNotFound, err)
	})
}
