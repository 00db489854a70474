package repository

import (
	"context"
	"errors"
	"time"

	"bizsuite/internal/database"
	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MembershipRepository defines the interface for business membership data operations.
type MembershipRepository interface {
	Create(ctx context.Context, member *models.Membership) error
	FindByBusinessID(ctx context.Context, businessID primitive.ObjectID) ([]models.Membership, error)
	FindByBusinessAndUser(ctx context.Context, businessID, userID primitive.ObjectID) (*models.Membership, error)
	FindAcceptedByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error)
	FindPendingByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error)
	Accept(ctx context.Context, businessID, userID primitive.ObjectID) error
	UpdateRole(ctx context.Context, businessID, userID primitive.ObjectID, role string) error
	Delete(ctx context.Context, businessID, userID primitive.ObjectID) error
	DeleteAllByBusinessID(ctx context.Context, businessID primitive.ObjectID) error
}

// membershipRepository implements MembershipRepository using MongoDB.
type membershipRepository struct {
	collection *mongo.Collection
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(db *mongo.Database) MembershipRepository {
	return &membershipRepository{
		collection: db.Collection(database.MembershipsCollection),
	}
}

// Create inserts a membership. The (business, user) pair is unique.
func (r *membershipRepository) Create(ctx context.Context, member *models.Membership) error {
	if existing, _ := r.FindByBusinessAndUser(ctx, member.BusinessID, member.UserID); existing != nil {
		return apperrors.ErrAlreadyMember
	}

	member.ID = primitive.NewObjectID()
	if member.InvitedAt.IsZero() {
		member.InvitedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, member)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrAlreadyMember
	}
	return err
}

// FindByBusinessID returns all memberships of a business, pending included.
func (r *membershipRepository) FindByBusinessID(ctx context.Context, businessID primitive.ObjectID) ([]models.Membership, error) {
	return r.find(ctx, bson.M{"businessId": businessID})
}

// FindByBusinessAndUser returns the membership of a user in a business.
func (r *membershipRepository) FindByBusinessAndUser(ctx context.Context, businessID, userID primitive.ObjectID) (*models.Membership, error) {
	filter := bson.M{
		"businessId": businessID,
		"userId":     userID,
	}

	var member models.Membership
	err := r.collection.FindOne(ctx, filter).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotBusinessMember
		}
		return nil, err
	}

	return &member, nil
}

// FindAcceptedByUserID returns the accepted memberships of a user.
func (r *membershipRepository) FindAcceptedByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error) {
	return r.find(ctx, bson.M{"userId": userID, "acceptedAt": bson.M{"$exists": true}})
}

// FindPendingByUserID returns the invitations a user has not accepted yet.
func (r *membershipRepository) FindPendingByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error) {
	return r.find(ctx, bson.M{"userId": userID, "acceptedAt": bson.M{"$exists": false}})
}

func (r *membershipRepository) find(ctx context.Context, filter bson.M) ([]models.Membership, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.Membership
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	if members == nil {
		members = []models.Membership{}
	}

	return members, nil
}

// Accept marks a pending membership as accepted.
func (r *membershipRepository) Accept(ctx context.Context, businessID, userID primitive.ObjectID) error {
	filter := bson.M{
		"businessId": businessID,
		"userId":     userID,
	}

	member, err := r.FindByBusinessAndUser(ctx, businessID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotBusinessMember) {
			return apperrors.ErrInvitationNotFound
		}
		return err
	}
	if member.IsAccepted() {
		return apperrors.ErrInvitationAlreadyTaken
	}

	filter["acceptedAt"] = bson.M{"$exists": false}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"acceptedAt": time.Now()}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrInvitationAlreadyTaken
	}

	return nil
}

// UpdateRole updates a member's role.
func (r *membershipRepository) UpdateRole(ctx context.Context, businessID, userID primitive.ObjectID, role string) error {
	filter := bson.M{
		"businessId": businessID,
		"userId":     userID,
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrNotBusinessMember
	}

	return nil
}

// Delete removes a membership.
func (r *membershipRepository) Delete(ctx context.Context, businessID, userID primitive.ObjectID) error {
	filter := bson.M{
		"businessId": businessID,
		"userId":     userID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrNotBusinessMember
	}

	return nil
}

// DeleteAllByBusinessID removes all memberships of a business (used when deleting a business).
func (r *membershipRepository) DeleteAllByBusinessID(ctx context.Context, businessID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"businessId": businessID})
	return err
}
