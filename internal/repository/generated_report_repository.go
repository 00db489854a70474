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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GeneratedReportRepository defines the interface for generated report data operations.
type GeneratedReportRepository interface {
	Create(ctx context.Context, report *models.GeneratedReport) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.GeneratedReport, error)
	FindByBusinessID(ctx context.Context, businessID primitive.ObjectID, categories []string, page, limit int) ([]models.GeneratedReport, int, error)
	MarkReady(ctx context.Context, id primitive.ObjectID, fileKey string, summary map[models.RecordKind]int64) error
	MarkFailed(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// generatedReportRepository implements GeneratedReportRepository using MongoDB.
type generatedReportRepository struct {
	collection *mongo.Collection
}

// NewGeneratedReportRepository creates a new GeneratedReportRepository.
func NewGeneratedReportRepository(db *mongo.Database) GeneratedReportRepository {
	return &generatedReportRepository{
		collection: db.Collection(database.GeneratedReportsCollection),
	}
}

// Create inserts a pending report.
func (r *generatedReportRepository) Create(ctx context.Context, report *models.GeneratedReport) error {
	report.ID = primitive.NewObjectID()
	report.CreatedAt = time.Now()
	if report.Status == "" {
		report.Status = models.ReportPending
	}

	_, err := r.collection.InsertOne(ctx, report)
	return err
}

// FindByID retrieves a report by ID.
func (r *generatedReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.GeneratedReport, error) {
	var report models.GeneratedReport
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, err
	}

	return &report, nil
}

// FindByBusinessID returns paginated reports of a business in the given
// categories, newest first.
func (r *generatedReportRepository) FindByBusinessID(ctx context.Context, businessID primitive.ObjectID, categories []string, page, limit int) ([]models.GeneratedReport, int, error) {
	if categories == nil {
		categories = []string{}
	}
	filter := bson.M{
		"businessId": businessID,
		"category":   bson.M{"$in": categories},
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var reports []models.GeneratedReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, err
	}

	if reports == nil {
		reports = []models.GeneratedReport{}
	}

	return reports, int(total), nil
}

// MarkReady records the uploaded file and summary of a pending report.
func (r *generatedReportRepository) MarkReady(ctx context.Context, id primitive.ObjectID, fileKey string, summary map[models.RecordKind]int64) error {
	return r.setStatus(ctx, id, bson.M{
		"status":      models.ReportReady,
		"fileKey":     fileKey,
		"summary":     summary,
		"completedAt": time.Now(),
	})
}

// MarkFailed flags a report whose generation failed.
func (r *generatedReportRepository) MarkFailed(ctx context.Context, id primitive.ObjectID) error {
	return r.setStatus(ctx, id, bson.M{
		"status":      models.ReportFailed,
		"completedAt": time.Now(),
	})
}

func (r *generatedReportRepository) setStatus(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrReportNotFound
	}

	return nil
}

// Delete removes a report.
func (r *generatedReportRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrReportNotFound
	}

	return nil
}
