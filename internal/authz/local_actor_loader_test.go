package authz

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeAccounts is a test double for AccountFinder.
type fakeAccounts struct {
	account *models.Account
	err     error
}

func (f *fakeAccounts) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Account, error) {
	return f.account, f.err
}

// fakeMemberships is a test double for MembershipFinder.
type fakeMemberships struct {
	members []models.Membership
	err     error
}

func (f *fakeMemberships) FindAcceptedByUserID(_ context.Context, _ primitive.ObjectID) ([]models.Membership, error) {
	return f.members, f.err
}

// fakeOwnerships is a test double for OwnershipFinder.
type fakeOwnerships struct {
	ids []primitive.ObjectID
	err error
}

func (f *fakeOwnerships) FindIDsByOwnerID(_ context.Context, _ primitive.ObjectID) ([]primitive.ObjectID, error) {
	return f.ids, f.err
}

// fakeSessions is a test double for CurrentBusinessStore.
type fakeSessions struct {
	id  primitive.ObjectID
	ok  bool
	err error
}

func (f *fakeSessions) GetCurrentBusiness(_ context.Context, _ primitive.ObjectID) (primitive.ObjectID, bool, error) {
	return f.id, f.ok, f.err
}

func accepted(businessID primitive.ObjectID, role string) models.Membership {
	now := time.Now()
	return models.Membership{BusinessID: businessID, Role: role, AcceptedAt: &now}
}

func TestNewLocalActorLoader(t *testing.T) {
	accounts := &fakeAccounts{}
	memberships := &fakeMemberships{}
	ownerships := &fakeOwnerships{}
	sessions := &fakeSessions{}

	loader := NewLocalActorLoader(accounts, memberships, ownerships, sessions)

	require.NotNil(t, loader)
	assert.Equal(t, accounts, loader.accounts)
	assert.Equal(t, memberships, loader.memberships)
	assert.Equal(t, ownerships, loader.ownerships)
	assert.Equal(t, sessions, loader.sessions)
}

func TestLocalActorLoader_LoadActor(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	b1 := primitive.NewObjectID()
	b2 := primitive.NewObjectID()
	b3 := primitive.NewObjectID()

	t.Run("builds standing from memberships and ownership", func(t *testing.T) {
		loader := NewLocalActorLoader(
			&fakeAccounts{account: &models.Account{ID: userID, GlobalRoles: []string{"super_admin"}}},
			&fakeMemberships{members: []models.Membership{accepted(b1, "manager"), accepted(b2, "owner")}},
			&fakeOwnerships{ids: []primitive.ObjectID{b2}},
			&fakeSessions{id: b1, ok: true},
		)

		actor, err := loader.LoadActor(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, actor.ID())
		current, ok := actor.CurrentBusinessID()
		assert.True(t, ok)
		assert.Equal(t, b1, current)

		role, ok := actor.MembershipRole(b1)
		assert.True(t, ok)
		assert.Equal(t, RoleManager, role)
		assert.False(t, actor.Owns(b1))
		assert.True(t, actor.Owns(b2))
		assert.True(t, actor.HasGlobalRole(GlobalRoleSuperAdmin))
	})

	t.Run("falls back to the account default business", func(t *testing.T) {
		loader := NewLocalActorLoader(
			&fakeAccounts{account: &models.Account{ID: userID, DefaultBusinessID: &b2}},
			&fakeMemberships{members: []models.Membership{accepted(b2, "finance")}},
			&fakeOwnerships{},
			&fakeSessions{ok: false},
		)

		actor, err := loader.LoadActor(ctx, userID)

		require.NoError(t, err)
		current, ok := actor.CurrentBusinessID()
		assert.True(t, ok)
		assert.Equal(t, b2, current)
	})

	t.Run("works without a session store", func(t *testing.T) {
		loader := NewLocalActorLoader(
			&fakeAccounts{account: &models.Account{ID: userID, DefaultBusinessID: &b1}},
			&fakeMemberships{},
			&fakeOwnerships{ids: []primitive.ObjectID{b1}},
			nil,
		)

		actor, err := loader.LoadActor(ctx, userID)

		require.NoError(t, err)
		assert.True(t, actor.HasCurrentBusiness())
	})

	t.Run("drops a current business without standing", func(t *testing.T) {
		loader := NewLocalActorLoader(
			&fakeAccounts{account: &models.Account{ID: userID}},
			&fakeMemberships{members: []models.Membership{accepted(b1, "admin")}},
			&fakeOwnerships{},
			&fakeSessions{id: b3, ok: true},
		)

		actor, err := loader.LoadActor(ctx, userID)

		require.NoError(t, err)
		assert.False(t, actor.HasCurrentBusiness())
	})

	t.Run("ignores memberships with unknown roles", func(t *testing.T) {
		loader := NewLocalActorLoader(
			&fakeAccounts{account: &models.Account{ID: userID}},
			&fakeMemberships{members: []models.Membership{accepted(b1, "member")}},
			&fakeOwnerships{},
			&fakeSessions{id: b1, ok: true},
		)

		actor, err := loader.LoadActor(ctx, userID)

		require.NoError(t, err)
		assert.False(t, actor.IsMember(b1))
		assert.False(t, actor.HasCurrentBusiness())
	})

	t.Run("missing session selection is not an error", func(t *testing.T) {
		loader := NewLocalActorLoader(
			&fakeAccounts{account: &models.Account{ID: userID}},
			&fakeMemberships{},
			&fakeOwnerships{},
			&fakeSessions{err: apperrors.ErrNoCurrentBusiness},
		)

		actor, err := loader.LoadActor(ctx, userID)

		require.NoError(t, err)
		assert.False(t, actor.HasCurrentBusiness())
	})
}

func TestLocalActorLoader_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	dbError := errors.New("database connection failed")
	account := &models.Account{ID: userID}

	tests := []struct {
		name   string
		loader *LocalActorLoader
		want   error
	}{
		{
			name:   "account lookup",
			loader: NewLocalActorLoader(&fakeAccounts{err: apperrors.ErrAccountNotFound}, &fakeMemberships{}, &fakeOwnerships{}, nil),
			want:   apperrors.ErrAccountNotFound,
		},
		{
			name:   "membership lookup",
			loader: NewLocalActorLoader(&fakeAccounts{account: account}, &fakeMemberships{err: dbError}, &fakeOwnerships{}, nil),
			want:   dbError,
		},
		{
			name:   "ownership lookup",
			loader: NewLocalActorLoader(&fakeAccounts{account: account}, &fakeMemberships{}, &fakeOwnerships{err: dbError}, nil),
			want:   dbError,
		},
		{
			name:   "session lookup",
			loader: NewLocalActorLoader(&fakeAccounts{account: account}, &fakeMemberships{}, &fakeOwnerships{}, &fakeSessions{err: dbError}),
			want:   dbError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor, err := tt.loader.LoadActor(ctx, userID)

			assert.Equal(t, tt.want, err)
			assert.Nil(t, actor)
		})
	}
}
