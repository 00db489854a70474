package authz

import (
	"context"
	"fmt"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionLimiter decides whether an account's plan allows another business.
type SubscriptionLimiter interface {
	CanCreateBusiness(ctx context.Context, userID primitive.ObjectID) (bool, error)
}

type businessCheck int

const (
	checkMembership businessCheck = iota + 1
	checkAdminOrOwner
	checkOwnerUser
)

// businessRules is the action table of the tenant root. Two ownership signals
// exist: the ownerUserId recorded on the business, and the membership role
// "owner". The latter is enough for administrative actions but not for
// deleting the business or managing its subscription.
var businessRules = map[Action]businessCheck{
	ActionView:               checkMembership,
	ActionUpdate:             checkAdminOrOwner,
	ActionInvite:             checkAdminOrOwner,
	ActionRemoveUser:         checkAdminOrOwner,
	ActionUpdateSettings:     checkAdminOrOwner,
	ActionManageIntegrations: checkAdminOrOwner,
	ActionDelete:             checkOwnerUser,
	ActionManageSubscription: checkOwnerUser,
}

// BusinessPolicy governs the business entity itself and its membership.
type BusinessPolicy struct {
	limiter SubscriptionLimiter
}

// NewBusinessPolicy creates a BusinessPolicy. A nil limiter allows every create.
func NewBusinessPolicy(limiter SubscriptionLimiter) *BusinessPolicy {
	return &BusinessPolicy{limiter: limiter}
}

// Create reports whether the actor may create a business. The policy allows
// unless the subscription limiter says no; limiter errors propagate.
func (p *BusinessPolicy) Create(ctx context.Context, actor *Actor) (bool, error) {
	if err := actor.validate(); err != nil {
		return false, err
	}
	if p.limiter == nil {
		return true, nil
	}
	return p.limiter.CanCreateBusiness(ctx, actor.ID())
}

// Allow decides an action on an existing business. Create goes through Create.
func (p *BusinessPolicy) Allow(actor *Actor, action Action, business *models.Business) (bool, error) {
	if err := actor.validate(); err != nil {
		return false, err
	}
	if business == nil || business.ID.IsZero() || business.OwnerID.IsZero() {
		return false, fmt.Errorf("%w: business is missing its id or owner", apperrors.ErrInvalidPolicyInput)
	}

	check, ok := businessRules[action]
	if !ok {
		return false, nil
	}

	isOwnerUser := business.OwnerID == actor.ID()
	role, isMember := actor.MembershipRole(business.ID)

	switch check {
	case checkMembership:
		return isOwnerUser || isMember, nil
	case checkAdminOrOwner:
		return isOwnerUser || (isMember && BusinessAdminRoles.Contains(role)), nil
	case checkOwnerUser:
		return isOwnerUser, nil
	}
	return false, nil
}

// View reports whether the actor owns the business or holds any membership in it.
func (p *BusinessPolicy) View(actor *Actor, b *models.Business) (bool, error) {
	return p.Allow(actor, ActionView, b)
}

// Update reports whether the actor may edit the business profile.
func (p *BusinessPolicy) Update(actor *Actor, b *models.Business) (bool, error) {
	return p.Allow(actor, ActionUpdate, b)
}

// Delete reports whether the actor may delete the business.
func (p *BusinessPolicy) Delete(actor *Actor, b *models.Business) (bool, error) {
	return p.Allow(actor, ActionDelete, b)
}

// Invite reports whether the actor may invite accounts.
func (p *BusinessPolicy) Invite(actor *Actor, b *models.Business) (bool, error) {
	return p.Allow(actor, ActionInvite, b)
}

// RemoveUser reports whether the actor may remove members.
func (p *BusinessPolicy) RemoveUser(actor *Actor, b *models.Business) (bool, error) {
	return p.Allow(actor, ActionRemoveUser, b)
}

// UpdateSettings reports whether the actor may change settings and member roles.
func (p *BusinessPolicy) UpdateSettings(actor *Actor, b *models.Business) (bool, error) {
	return p.Allow(actor, ActionUpdateSettings, b)
}

// ManageIntegrations reports whether the actor may change integrations.
func (p *BusinessPolicy) ManageIntegrations(actor *Actor, b *models.Business) (bool, error) {
	return p.Allow(actor, ActionManageIntegrations, b)
}

// ManageSubscription reports whether the actor may change the subscription plan.
func (p *BusinessPolicy) ManageSubscription(actor *Actor, b *models.Business) (bool, error) {
	return p.Allow(actor, ActionManageSubscription, b)
}
