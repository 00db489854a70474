package repository

import (
	"context"
	"errors"
	"time"

	"bizsuite/internal/database"
	"bizsuite/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// KPIConfigRepository stores the single KPI configuration document of a business.
type KPIConfigRepository interface {
	FindByBusinessID(ctx context.Context, businessID primitive.ObjectID) (*models.KPIConfig, error)
	Set(ctx context.Context, businessID primitive.ObjectID, fields bson.M) (*models.KPIConfig, error)
	AddCustomKPI(ctx context.Context, businessID primitive.ObjectID, kpi models.CustomKPI) (*models.KPIConfig, error)
	DeleteByBusinessID(ctx context.Context, businessID primitive.ObjectID) error
}

// kpiConfigRepository implements KPIConfigRepository using MongoDB.
type kpiConfigRepository struct {
	collection *mongo.Collection
}

// NewKPIConfigRepository creates a new KPIConfigRepository.
func NewKPIConfigRepository(db *mongo.Database) KPIConfigRepository {
	return &kpiConfigRepository{
		collection: db.Collection(database.KPIConfigsCollection),
	}
}

// FindByBusinessID returns the configuration, or an empty one when none was saved yet.
func (r *kpiConfigRepository) FindByBusinessID(ctx context.Context, businessID primitive.ObjectID) (*models.KPIConfig, error) {
	var cfg models.KPIConfig
	err := r.collection.FindOne(ctx, bson.M{"businessId": businessID}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.KPIConfig{BusinessID: businessID}, nil
		}
		return nil, err
	}

	return &cfg, nil
}

// Set upserts fields on the configuration and returns the stored document.
func (r *kpiConfigRepository) Set(ctx context.Context, businessID primitive.ObjectID, fields bson.M) (*models.KPIConfig, error) {
	fields["updatedAt"] = time.Now()
	return r.upsert(ctx, businessID, bson.M{"$set": fields})
}

// AddCustomKPI appends a custom KPI, replacing one with the same code.
func (r *kpiConfigRepository) AddCustomKPI(ctx context.Context, businessID primitive.ObjectID, kpi models.CustomKPI) (*models.KPIConfig, error) {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"businessId": businessID},
		bson.M{"$pull": bson.M{"customKpis": bson.M{"code": kpi.Code}}},
	)
	if err != nil {
		return nil, err
	}

	return r.upsert(ctx, businessID, bson.M{
		"$push": bson.M{"customKpis": kpi},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

func (r *kpiConfigRepository) upsert(ctx context.Context, businessID primitive.ObjectID, update bson.M) (*models.KPIConfig, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cfg models.KPIConfig
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"businessId": businessID}, update, opts).Decode(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DeleteByBusinessID removes the configuration of a business.
func (r *kpiConfigRepository) DeleteByBusinessID(ctx context.Context, businessID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"businessId": businessID})
	return err
}
