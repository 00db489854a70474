// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"bizsuite/internal/database"
	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks bizsuite/internal/repository AccountRepository,BusinessRepository,MembershipRepository,RecordRepository,KPIConfigRepository,GeneratedReportRepository

// AccountRepository defines the interface for account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Account, error)
	SetDefaultBusiness(ctx context.Context, id primitive.ObjectID, businessID *primitive.ObjectID) error
}

// accountRepository implements AccountRepository using MongoDB
type accountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *mongo.Database) AccountRepository {
	return &accountRepository{
		collection: db.Collection(database.AccountsCollection),
	}
}

// Create inserts a new account. Emails are stored lowercased.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))

	existing, _ := r.FindByEmail(ctx, account.Email)
	if existing != nil {
		return apperrors.ErrAccountAlreadyExists
	}

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAccountAlreadyExists
		}
		return err
	}

	account.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds an account by its ID
func (r *accountRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	var account models.Account

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

// FindByEmail finds an account by email, case-insensitively
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account

	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

// FindByIDs returns the accounts with the given IDs. Missing IDs are skipped.
func (r *accountRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Account, error) {
	if len(ids) == 0 {
		return []models.Account{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}

	if accounts == nil {
		accounts = []models.Account{}
	}

	return accounts, nil
}

// SetDefaultBusiness stores the business used when a session has no selection.
// A nil businessID clears it.
func (r *accountRepository) SetDefaultBusiness(ctx context.Context, id primitive.ObjectID, businessID *primitive.ObjectID) error {
	var update bson.M
	if businessID == nil {
		update = bson.M{
			"$unset": bson.M{"defaultBusinessId": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	} else {
		update = bson.M{"$set": bson.M{"defaultBusinessId": *businessID, "updatedAt": time.Now()}}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}
