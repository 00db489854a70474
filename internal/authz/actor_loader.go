// Package authz provides the multi-tenant authorization model: roles, the
// per-resource policy tables, the business policy and the loader that builds
// an Actor for a request.
package authz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_actor_loader.go -package=mocks bizsuite/internal/authz ActorLoader

// ActorLoader builds the authorization context for an authenticated account.
// Policies never load data themselves; everything they need is on the Actor.
type ActorLoader interface {
	// LoadActor returns the Actor for userID.
	LoadActor(ctx context.Context, userID primitive.ObjectID) (*Actor, error)
}

// Ensure LocalActorLoader implements ActorLoader
var _ ActorLoader = (*LocalActorLoader)(nil)
