package authz

import (
	"context"
	"errors"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountFinder looks up accounts.
type AccountFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
}

// MembershipFinder looks up accepted memberships of an account.
type MembershipFinder interface {
	FindAcceptedByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error)
}

// OwnershipFinder looks up the businesses an account is ownerUserId of.
type OwnershipFinder interface {
	FindIDsByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// CurrentBusinessStore holds the session's current business selection.
type CurrentBusinessStore interface {
	GetCurrentBusiness(ctx context.Context, userID primitive.ObjectID) (primitive.ObjectID, bool, error)
}

// LocalActorLoader implements ActorLoader using repository lookups.
type LocalActorLoader struct {
	accounts    AccountFinder
	memberships MembershipFinder
	ownerships  OwnershipFinder
	sessions    CurrentBusinessStore
}

// NewLocalActorLoader creates a new LocalActorLoader.
func NewLocalActorLoader(accounts AccountFinder, memberships MembershipFinder, ownerships OwnershipFinder, sessions CurrentBusinessStore) *LocalActorLoader {
	return &LocalActorLoader{
		accounts:    accounts,
		memberships: memberships,
		ownerships:  ownerships,
		sessions:    sessions,
	}
}

// LoadActor builds the Actor for userID. The current business comes from the
// session, falling back to the account default, and is dropped when the
// account has no standing in it. Lookup errors propagate unchanged.
func (l *LocalActorLoader) LoadActor(ctx context.Context, userID primitive.ObjectID) (*Actor, error) {
	account, err := l.accounts.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	memberships, err := l.memberships.FindAcceptedByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned, err := l.ownerships.FindIDsByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	opts := []ActorOption{WithGlobalRoles(account.GlobalRoles...)}
	hasStanding := make(map[primitive.ObjectID]bool, len(memberships)+len(owned))

	for _, m := range memberships {
		role, err := ParseRole(m.Role)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"userId":     userID.Hex(),
				"businessId": m.BusinessID.Hex(),
				"role":       m.Role,
			}).Warn("Ignoring membership with unknown role")
			continue
		}
		opts = append(opts, WithMembership(m.BusinessID, role))
		hasStanding[m.BusinessID] = true
	}
	for _, id := range owned {
		opts = append(opts, WithOwnership(id))
		hasStanding[id] = true
	}

	current, err := l.currentBusiness(ctx, account)
	if err != nil {
		return nil, err
	}
	if !current.IsZero() && hasStanding[current] {
		opts = append(opts, WithCurrentBusiness(current))
	}

	return NewActor(userID, opts...), nil
}

func (l *LocalActorLoader) currentBusiness(ctx context.Context, account *models.Account) (primitive.ObjectID, error) {
	if l.sessions != nil {
		id, ok, err := l.sessions.GetCurrentBusiness(ctx, account.ID)
		if err != nil && !errors.Is(err, apperrors.ErrNoCurrentBusiness) {
			return primitive.NilObjectID, err
		}
		if ok {
			return id, nil
		}
	}
	if account.DefaultBusinessID != nil {
		return *account.DefaultBusinessID, nil
	}
	return primitive.NilObjectID, nil
}
