package authz

import (
	"fmt"
	"strings"

	apperrors "bizsuite/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// standing is what an actor holds inside one business.
type standing struct {
	role  Role
	owner bool
}

// Actor is the authorization context of one request: who is acting, which
// business is currently selected and what standing the actor has in each
// business. It is built once by the loading layer and never mutated, so
// policies can evaluate it without touching session or storage state.
type Actor struct {
	id                primitive.ObjectID
	currentBusinessID primitive.ObjectID
	globalRoles       map[string]struct{}
	standings         map[primitive.ObjectID]standing
}

// ActorOption configures an Actor under construction.
type ActorOption func(*Actor)

// WithCurrentBusiness selects the current business. A zero id leaves the
// actor without tenant context.
func WithCurrentBusiness(businessID primitive.ObjectID) ActorOption {
	return func(a *Actor) {
		a.currentBusinessID = businessID
	}
}

// WithMembership records the actor's membership role in a business.
func WithMembership(businessID primitive.ObjectID, role Role) ActorOption {
	return func(a *Actor) {
		s := a.standings[businessID]
		s.role = role
		a.standings[businessID] = s
	}
}

// WithOwnership marks the actor as the ownerUserId of a business.
func WithOwnership(businessID primitive.ObjectID) ActorOption {
	return func(a *Actor) {
		s := a.standings[businessID]
		s.owner = true
		a.standings[businessID] = s
	}
}

// WithGlobalRoles attaches platform-wide role labels.
func WithGlobalRoles(roles ...string) ActorOption {
	return func(a *Actor) {
		for _, r := range roles {
			a.globalRoles[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
		}
	}
}

// NewActor builds an immutable Actor.
func NewActor(id primitive.ObjectID, opts ...ActorOption) *Actor {
	a := &Actor{
		id:          id,
		globalRoles: make(map[string]struct{}),
		standings:   make(map[primitive.ObjectID]standing),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ID returns the actor's account id.
func (a *Actor) ID() primitive.ObjectID {
	return a.id
}

// CurrentBusinessID returns the selected business and whether one is set.
func (a *Actor) CurrentBusinessID() (primitive.ObjectID, bool) {
	return a.currentBusinessID, !a.currentBusinessID.IsZero()
}

// HasCurrentBusiness reports whether the actor has tenant context.
func (a *Actor) HasCurrentBusiness() bool {
	return !a.currentBusinessID.IsZero()
}

// MembershipRole returns the actor's role in a business, if any.
func (a *Actor) MembershipRole(businessID primitive.ObjectID) (Role, bool) {
	s, ok := a.standings[businessID]
	if !ok || s.role == "" {
		return "", false
	}
	return s.role, true
}

// IsMember reports whether the actor holds a membership row in a business.
func (a *Actor) IsMember(businessID primitive.ObjectID) bool {
	_, ok := a.MembershipRole(businessID)
	return ok
}

// Owns reports whether the actor is the ownerUserId of a business.
func (a *Actor) Owns(businessID primitive.ObjectID) bool {
	return a.standings[businessID].owner
}

// HasGlobalRole reports whether the actor carries any of the given global labels.
func (a *Actor) HasGlobalRole(roles ...string) bool {
	for _, r := range roles {
		if _, ok := a.globalRoles[strings.ToLower(r)]; ok {
			return true
		}
	}
	return false
}

// BusinessIDs returns every business the actor has standing in.
func (a *Actor) BusinessIDs() []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(a.standings))
	for id := range a.standings {
		ids = append(ids, id)
	}
	return ids
}

func (a *Actor) validate() error {
	if a == nil || a.id.IsZero() {
		return fmt.Errorf("%w: actor has no identity", apperrors.ErrInvalidPolicyInput)
	}
	return nil
}
