package service

import (
	"context"
	"strings"
	"time"

	"bizsuite/internal/authz"
	"bizsuite/internal/cache"
	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"
	"bizsuite/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// BusinessService handles business logic for the tenant root.
type BusinessService struct {
	businessRepo   repository.BusinessRepository
	membershipRepo repository.MembershipRepository
	accountRepo    repository.AccountRepository
	recordRepo     repository.RecordRepository
	kpiRepo        repository.KPIConfigRepository
	sessions       cache.SessionStore
}

// BusinessServiceConfig holds the collaborators of BusinessService.
type BusinessServiceConfig struct {
	BusinessRepo   repository.BusinessRepository
	MembershipRepo repository.MembershipRepository
	AccountRepo    repository.AccountRepository
	RecordRepo     repository.RecordRepository
	KPIRepo        repository.KPIConfigRepository
	Sessions       cache.SessionStore
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(cfg BusinessServiceConfig) *BusinessService {
	return &BusinessService{
		businessRepo:   cfg.BusinessRepo,
		membershipRepo: cfg.MembershipRepo,
		accountRepo:    cfg.AccountRepo,
		recordRepo:     cfg.RecordRepo,
		kpiRepo:        cfg.KPIRepo,
		sessions:       cfg.Sessions,
	}
}

// CreateBusiness creates a business owned by userID and adds the creator as
// an accepted member with role owner. The plan limit is checked by the caller.
func (s *BusinessService) CreateBusiness(ctx context.Context, userID primitive.ObjectID, req *models.CreateBusinessRequest) (*models.Business, error) {
	business := &models.Business{
		Name:        strings.TrimSpace(req.Name),
		Slug:        strings.ToLower(req.Slug),
		Industry:    req.Industry,
		Description: req.Description,
		OwnerID:     userID,
	}

	if err := s.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	now := time.Now()
	member := &models.Membership{
		BusinessID: business.ID,
		UserID:     userID,
		Role:       string(authz.RoleOwner),
		InvitedAt:  now,
		AcceptedAt: &now,
	}

	if err := s.membershipRepo.Create(ctx, member); err != nil {
		// Rollback business creation on failure
		_ = s.businessRepo.SoftDelete(ctx, business.ID)
		return nil, err
	}

	// A freshly created business becomes the current one
	if err := s.sessions.SetCurrentBusiness(ctx, userID, business.ID); err != nil {
		logrus.WithError(err).WithField("business_id", business.ID.Hex()).Warn("Failed to select new business")
	}

	logrus.WithFields(logrus.Fields{
		"business_id": business.ID.Hex(),
		"user_id":     userID.Hex(),
	}).Info("Business created")

	return business, nil
}

// ListMyBusinesses returns paginated businesses where userID is an accepted member.
func (s *BusinessService) ListMyBusinesses(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.BusinessListResponse, error) {
	page, limit = normalizePage(page, limit)

	businesses, total, err := s.businessRepo.FindByMemberID(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.BusinessListResponse{
		Items:      businesses,
		Pagination: paginate(page, limit, total),
	}, nil
}

// ListAllBusinesses returns every live business. Platform administrators only.
func (s *BusinessService) ListAllBusinesses(ctx context.Context, page, limit int) (*models.BusinessListResponse, error) {
	page, limit = normalizePage(page, limit)

	businesses, total, err := s.businessRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.BusinessListResponse{
		Items:      businesses,
		Pagination: paginate(page, limit, total),
	}, nil
}

// GetBusiness retrieves a business by ID.
func (s *BusinessService) GetBusiness(ctx context.Context, id primitive.ObjectID) (*models.Business, error) {
	return s.businessRepo.FindByID(ctx, id)
}

// UpdateBusiness updates the profile of a business.
func (s *BusinessService) UpdateBusiness(ctx context.Context, business *models.Business, req *models.UpdateBusinessRequest) (*models.Business, error) {
	updated := *business
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Industry != nil {
		updated.Industry = *req.Industry
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}

	if err := s.businessRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteBusiness removes the records, KPI configuration and memberships of a
// business, then soft deletes it. A failed step leaves the business live so
// the owner can retry. Sessions pointing at it are cleared last.
func (s *BusinessService) DeleteBusiness(ctx context.Context, businessID primitive.ObjectID) error {
	members, err := s.membershipRepo.FindByBusinessID(ctx, businessID)
	if err != nil {
		return err
	}

	if err := s.recordRepo.DeleteAllByBusinessID(ctx, businessID); err != nil {
		return err
	}

	if err := s.kpiRepo.DeleteByBusinessID(ctx, businessID); err != nil {
		return err
	}

	if err := s.membershipRepo.DeleteAllByBusinessID(ctx, businessID); err != nil {
		return err
	}

	if err := s.businessRepo.SoftDelete(ctx, businessID); err != nil {
		return err
	}

	for _, m := range members {
		forgetBusiness(ctx, s.sessions, s.accountRepo, m.UserID, businessID)
	}

	logrus.WithField("business_id", businessID.Hex()).Info("Business deleted")
	return nil
}

// SwitchBusiness makes businessID the actor's current business. The actor
// must hold an accepted membership in it.
func (s *BusinessService) SwitchBusiness(ctx context.Context, actor *authz.Actor, businessID primitive.ObjectID) (*models.CurrentBusinessResponse, error) {
	role, ok := actor.MembershipRole(businessID)
	if !ok {
		return nil, apperrors.ErrNotBusinessMember
	}

	if err := s.sessions.SetCurrentBusiness(ctx, actor.ID(), businessID); err != nil {
		return nil, err
	}

	if err := s.accountRepo.SetDefaultBusiness(ctx, actor.ID(), &businessID); err != nil {
		return nil, err
	}

	return &models.CurrentBusinessResponse{
		BusinessID: businessID.Hex(),
		Role:       string(role),
	}, nil
}

// CurrentBusiness reports the actor's current business and role there.
func (s *BusinessService) CurrentBusiness(actor *authz.Actor) (*models.CurrentBusinessResponse, error) {
	businessID, ok := actor.CurrentBusinessID()
	if !ok {
		return nil, apperrors.ErrNoCurrentBusiness
	}

	role, _ := actor.MembershipRole(businessID)
	return &models.CurrentBusinessResponse{
		BusinessID: businessID.Hex(),
		Role:       string(role),
	}, nil
}

// UpdateSettings replaces the settings document of a business.
func (s *BusinessService) UpdateSettings(ctx context.Context, businessID primitive.ObjectID, settings map[string]interface{}) (*models.Business, error) {
	return s.updateFields(ctx, businessID, bson.M{"settings": settings})
}

// UpdateIntegrations replaces the integration settings of a business.
func (s *BusinessService) UpdateIntegrations(ctx context.Context, businessID primitive.ObjectID, integrations map[string]string) (*models.Business, error) {
	return s.updateFields(ctx, businessID, bson.M{"integrations": integrations})
}

// UpdateSubscription records a new plan. No charge is made here.
func (s *BusinessService) UpdateSubscription(ctx context.Context, businessID primitive.ObjectID, plan string) (*models.Business, error) {
	business, err := s.updateFields(ctx, businessID, bson.M{"plan": plan})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"business_id": businessID.Hex(),
		"plan":        plan,
	}).Info("Subscription plan changed")

	return business, nil
}

func (s *BusinessService) updateFields(ctx context.Context, businessID primitive.ObjectID, fields bson.M) (*models.Business, error) {
	if err := s.businessRepo.UpdateFields(ctx, businessID, fields); err != nil {
		return nil, err
	}
	return s.businessRepo.FindByID(ctx, businessID)
}

// forgetBusiness drops businessID from the user's session and default
// business. Failures are logged; the membership is already gone.
func forgetBusiness(ctx context.Context, sessions cache.SessionStore, accounts repository.AccountRepository, userID, businessID primitive.ObjectID) {
	log := logrus.WithFields(logrus.Fields{
		"user_id":     userID.Hex(),
		"business_id": businessID.Hex(),
	})

	if err := sessions.ClearIfCurrent(ctx, userID, businessID); err != nil {
		log.WithError(err).Warn("Failed to clear current business")
	}

	account, err := accounts.FindByID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to load account")
		return
	}
	if account.DefaultBusinessID != nil && *account.DefaultBusinessID == businessID {
		if err := accounts.SetDefaultBusiness(ctx, userID, nil); err != nil {
			log.WithError(err).Warn("Failed to clear default business")
		}
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func paginate(page, limit, total int) models.Pagination {
	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return models.Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
