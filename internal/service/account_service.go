package service

import (
	"context"
	"time"

	"bizsuite/internal/cache"
	"bizsuite/internal/models"
	"bizsuite/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const accountCacheTTL = 15 * time.Minute

// AccountService serves the authenticated account's profile.
type AccountService struct {
	repo  repository.AccountRepository
	cache cache.Cache
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo repository.AccountRepository, cache cache.Cache) *AccountService {
	return &AccountService{
		repo:  repo,
		cache: cache,
	}
}

// GetAccount retrieves an account by ID (with caching).
func (s *AccountService) GetAccount(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	cacheKey := cache.AccountCacheKey(id.Hex())
	var account models.Account
	found, err := s.cache.Get(ctx, cacheKey, &account)
	if err == nil && found {
		return &account, nil
	}

	dbAccount, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Best effort
	_ = s.cache.Set(ctx, cacheKey, dbAccount, accountCacheTTL)

	return dbAccount, nil
}

// SetDefaultBusiness stores the business picked on login. A nil id clears it.
func (s *AccountService) SetDefaultBusiness(ctx context.Context, id primitive.ObjectID, businessID *primitive.ObjectID) error {
	if err := s.repo.SetDefaultBusiness(ctx, id, businessID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.AccountCacheKey(id.Hex()))
	return nil
}
