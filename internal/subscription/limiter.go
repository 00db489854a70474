// Package subscription decides plan-based limits for accounts.
package subscription

import (
	"context"

	"bizsuite/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessLimits is the number of businesses an account may own per plan.
var BusinessLimits = map[string]int{
	models.PlanFree:     1,
	models.PlanPro:      3,
	models.PlanBusiness: 10,
}

// OwnedBusinessFinder is the subset of the business repository the limiter needs.
type OwnedBusinessFinder interface {
	CountByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (int, error)
	FindPlansByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]string, error)
}

// PlanLimiter limits business creation by the best plan among the businesses
// an account already owns. Accounts that own nothing are on the free plan.
type PlanLimiter struct {
	businesses OwnedBusinessFinder
}

// NewPlanLimiter creates a PlanLimiter.
func NewPlanLimiter(businesses OwnedBusinessFinder) *PlanLimiter {
	return &PlanLimiter{businesses: businesses}
}

// Limit returns how many businesses userID may own.
func (l *PlanLimiter) Limit(ctx context.Context, userID primitive.ObjectID) (int, error) {
	plans, err := l.businesses.FindPlansByOwnerID(ctx, userID)
	if err != nil {
		return 0, err
	}

	limit := BusinessLimits[models.PlanFree]
	for _, plan := range plans {
		if n, ok := BusinessLimits[plan]; ok && n > limit {
			limit = n
		}
	}
	return limit, nil
}

// CanCreateBusiness reports whether userID is below its plan's business limit.
func (l *PlanLimiter) CanCreateBusiness(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	limit, err := l.Limit(ctx, userID)
	if err != nil {
		return false, err
	}

	count, err := l.businesses.CountByOwnerID(ctx, userID)
	if err != nil {
		return false, err
	}

	return count < limit, nil
}
