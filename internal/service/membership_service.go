package service

import (
	"context"

	"bizsuite/internal/authz"
	"bizsuite/internal/cache"
	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"
	"bizsuite/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipService handles invitations and member management.
type MembershipService struct {
	membershipRepo repository.MembershipRepository
	accountRepo    repository.AccountRepository
	sessions       cache.SessionStore
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(
	membershipRepo repository.MembershipRepository,
	accountRepo repository.AccountRepository,
	sessions cache.SessionStore,
) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		accountRepo:    accountRepo,
		sessions:       sessions,
	}
}

// ListMembers returns all memberships of a business with account details.
func (s *MembershipService) ListMembers(ctx context.Context, businessID primitive.ObjectID) (*models.MemberListResponse, error) {
	members, err := s.membershipRepo.FindByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}

	accounts, err := s.accountRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	items := make([]models.MemberWithAccount, 0, len(members))
	for _, m := range members {
		item := models.MemberWithAccount{Membership: m}
		if a, ok := byID[m.UserID]; ok {
			item.Account = &models.AccountSummary{ID: a.ID, Email: a.Email, Name: a.Name}
		}
		items = append(items, item)
	}

	return &models.MemberListResponse{Items: items}, nil
}

// Invite creates a pending membership for the account registered under
// req.Email. Only the business owner can hand out the owner role.
func (s *MembershipService) Invite(ctx context.Context, business *models.Business, inviterID primitive.ObjectID, req *models.InviteMemberRequest) (*models.Membership, error) {
	role, err := authz.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if role == authz.RoleOwner && inviterID != business.OwnerID {
		return nil, apperrors.ErrOwnerRoleReserved
	}

	invitee, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	member := &models.Membership{
		BusinessID: business.ID,
		UserID:     invitee.ID,
		Role:       string(role),
		InvitedBy:  &inviterID,
	}

	if err := s.membershipRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"business_id": business.ID.Hex(),
		"user_id":     invitee.ID.Hex(),
		"role":        member.Role,
	}).Info("Member invited")

	return member, nil
}

// ListMyInvitations returns the pending invitations of userID.
func (s *MembershipService) ListMyInvitations(ctx context.Context, userID primitive.ObjectID) (*models.InvitationListResponse, error) {
	pending, err := s.membershipRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.InvitationListResponse{Items: pending}, nil
}

// AcceptInvitation accepts the pending membership of userID in businessID.
func (s *MembershipService) AcceptInvitation(ctx context.Context, businessID, userID primitive.ObjectID) (*models.Membership, error) {
	if err := s.membershipRepo.Accept(ctx, businessID, userID); err != nil {
		return nil, err
	}

	return s.membershipRepo.FindByBusinessAndUser(ctx, businessID, userID)
}

// RemoveMember removes targetUserID from the business. The owner cannot be
// removed and members leave through LeaveBusiness.
func (s *MembershipService) RemoveMember(ctx context.Context, business *models.Business, targetUserID, requestingUserID primitive.ObjectID) error {
	if targetUserID == business.OwnerID {
		return apperrors.ErrCannotRemoveOwner
	}
	if targetUserID == requestingUserID {
		return apperrors.ErrCannotRemoveSelf
	}

	if err := s.membershipRepo.Delete(ctx, business.ID, targetUserID); err != nil {
		return err
	}

	forgetBusiness(ctx, s.sessions, s.accountRepo, targetUserID, business.ID)
	return nil
}

// UpdateRole changes a member's role. The owner's role is fixed, and only the
// owner can grant the owner role.
func (s *MembershipService) UpdateRole(ctx context.Context, business *models.Business, targetUserID, requestingUserID primitive.ObjectID, newRole string) (*models.Membership, error) {
	role, err := authz.ParseRole(newRole)
	if err != nil {
		return nil, err
	}
	if targetUserID == business.OwnerID {
		return nil, apperrors.ErrCannotChangeOwnerRole
	}
	if role == authz.RoleOwner && requestingUserID != business.OwnerID {
		return nil, apperrors.ErrOwnerRoleReserved
	}

	if err := s.membershipRepo.UpdateRole(ctx, business.ID, targetUserID, string(role)); err != nil {
		return nil, err
	}

	return s.membershipRepo.FindByBusinessAndUser(ctx, business.ID, targetUserID)
}

// LeaveBusiness removes userID's own membership. The owner cannot leave.
func (s *MembershipService) LeaveBusiness(ctx context.Context, business *models.Business, userID primitive.ObjectID) error {
	if userID == business.OwnerID {
		return apperrors.ErrOwnerCannotLeave
	}

	if err := s.membershipRepo.Delete(ctx, business.ID, userID); err != nil {
		return err
	}

	forgetBusiness(ctx, s.sessions, s.accountRepo, userID, business.ID)
	return nil
}
