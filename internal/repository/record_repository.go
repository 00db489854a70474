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

// RecordFilter narrows a record listing.
type RecordFilter struct {
	Status     string
	AssigneeID *primitive.ObjectID
}

// RecordRepository defines the interface for tenant record data operations.
// Lookups by id do not filter on business; tenant isolation is decided by
// the caller's policy check on the loaded record.
type RecordRepository interface {
	Create(ctx context.Context, record *models.Record) error
	CreateMany(ctx context.Context, records []*models.Record) (int, error)
	FindByID(ctx context.Context, kind models.RecordKind, id primitive.ObjectID) (*models.Record, error)
	FindByBusiness(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, filter RecordFilter, page, limit int) ([]models.Record, int, error)
	FindAllByBusiness(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind) ([]models.Record, error)
	Update(ctx context.Context, record *models.Record) error
	SetFields(ctx context.Context, kind models.RecordKind, id primitive.ObjectID, fields bson.M) error
	BulkUpdateStatus(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, ids []primitive.ObjectID, status string) (int64, error)
	Delete(ctx context.Context, kind models.RecordKind, id primitive.ObjectID) error
	DeleteAllByBusinessID(ctx context.Context, businessID primitive.ObjectID) error
	CountByKind(ctx context.Context, businessID primitive.ObjectID) (map[models.RecordKind]int64, error)
	CountByDataField(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, field string, value interface{}) (int64, error)
}

// recordRepository implements RecordRepository using MongoDB.
type recordRepository struct {
	collection *mongo.Collection
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(db *mongo.Database) RecordRepository {
	return &recordRepository{
		collection: db.Collection(database.RecordsCollection),
	}
}

// Create inserts a new record.
func (r *recordRepository) Create(ctx context.Context, record *models.Record) error {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// CreateMany inserts a batch of records and returns how many were written.
func (r *recordRepository) CreateMany(ctx context.Context, records []*models.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(records))
	for _, rec := range records {
		rec.ID = primitive.NewObjectID()
		rec.CreatedAt = now
		rec.UpdatedAt = now
		docs = append(docs, rec)
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}

	return len(result.InsertedIDs), nil
}

// FindByID retrieves a record of a kind by ID.
func (r *recordRepository) FindByID(ctx context.Context, kind models.RecordKind, id primitive.ObjectID) (*models.Record, error) {
	var record models.Record
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "kind": kind}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, err
	}

	return &record, nil
}

// FindByBusiness returns paginated records of a business, newest first.
func (r *recordRepository) FindByBusiness(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, filter RecordFilter, page, limit int) ([]models.Record, int, error) {
	query := bson.M{"businessId": businessID, "kind": kind}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.AssigneeID != nil {
		query["assigneeId"] = *filter.AssigneeID
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	records, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	return records, int(total), nil
}

// FindAllByBusiness returns every record of a kind in a business, oldest first.
func (r *recordRepository) FindAllByBusiness(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind) ([]models.Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.find(ctx, bson.M{"businessId": businessID, "kind": kind}, opts)
}

func (r *recordRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Record, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.Record{}
	}

	return records, nil
}

// Update saves the editable fields of a record. BusinessID and Kind are never written.
func (r *recordRepository) Update(ctx context.Context, record *models.Record) error {
	record.UpdatedAt = time.Now()

	return r.SetFields(ctx, record.Kind, record.ID, bson.M{
		"title":     record.Title,
		"status":    record.Status,
		"data":      record.Data,
		"updatedAt": record.UpdatedAt,
	})
}

// SetFields sets arbitrary fields on a record.
func (r *recordRepository) SetFields(ctx context.Context, kind models.RecordKind, id primitive.ObjectID, fields bson.M) error {
	if _, ok := fields["updatedAt"]; !ok {
		fields["updatedAt"] = time.Now()
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "kind": kind}, bson.M{"$set": fields})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrRecordNotFound
	}

	return nil
}

// BulkUpdateStatus sets the status of the listed records that belong to the
// business. Records of other businesses are left untouched.
func (r *recordRepository) BulkUpdateStatus(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, ids []primitive.ObjectID, status string) (int64, error) {
	filter := bson.M{
		"_id":        bson.M{"$in": ids},
		"businessId": businessID,
		"kind":       kind,
	}

	result, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}})
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}

// Delete removes a record.
func (r *recordRepository) Delete(ctx context.Context, kind models.RecordKind, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "kind": kind})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrRecordNotFound
	}

	return nil
}

// DeleteAllByBusinessID removes all records of a business.
func (r *recordRepository) DeleteAllByBusinessID(ctx context.Context, businessID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"businessId": businessID})
	return err
}

// CountByKind returns the number of records per kind in a business. Kinds
// without records are reported as zero.
func (r *recordRepository) CountByKind(ctx context.Context, businessID primitive.ObjectID) (map[models.RecordKind]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"businessId": businessID}}},
		{{Key: "$group", Value: bson.M{"_id": "$kind", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Kind  models.RecordKind `bson:"_id"`
		Count int64             `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[models.RecordKind]int64, len(models.RecordKinds))
	for _, kind := range models.RecordKinds {
		counts[kind] = 0
	}
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}

	return counts, nil
}

// CountByDataField counts records of a kind whose data.<field> equals value.
func (r *recordRepository) CountByDataField(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, field string, value interface{}) (int64, error) {
	filter := bson.M{
		"businessId":    businessID,
		"kind":          kind,
		"data." + field: value,
	}

	return r.collection.CountDocuments(ctx, filter)
}
