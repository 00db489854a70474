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

// BusinessRepository defines the interface for business data operations.
type BusinessRepository interface {
	Create(ctx context.Context, business *models.Business) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error)
	FindBySlug(ctx context.Context, slug string) (*models.Business, error)
	FindByMemberID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Business, int, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Business, int, error)
	FindIDsByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error)
	CountByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (int, error)
	FindPlansByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]string, error)
	Update(ctx context.Context, business *models.Business) error
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
}

// businessRepository implements BusinessRepository using MongoDB.
type businessRepository struct {
	collection *mongo.Collection
}

// NewBusinessRepository creates a new BusinessRepository.
func NewBusinessRepository(db *mongo.Database) BusinessRepository {
	return &businessRepository{
		collection: db.Collection(database.BusinessesCollection),
	}
}

// notDeleted is the base filter for live businesses.
func notDeleted(filter bson.M) bson.M {
	filter["deletedAt"] = bson.M{"$exists": false}
	return filter
}

// Create inserts a new business. New businesses start on the free plan.
func (r *businessRepository) Create(ctx context.Context, business *models.Business) error {
	if existing, _ := r.FindBySlug(ctx, business.Slug); existing != nil {
		return apperrors.ErrBusinessSlugTaken
	}

	business.ID = primitive.NewObjectID()
	business.CreatedAt = time.Now()
	business.UpdatedAt = business.CreatedAt

	if business.Plan == "" {
		business.Plan = models.PlanFree
	}

	_, err := r.collection.InsertOne(ctx, business)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrBusinessSlugTaken
	}
	return err
}

// FindByID retrieves a business by ID. Excludes soft-deleted businesses.
func (r *businessRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error) {
	return r.findOne(ctx, notDeleted(bson.M{"_id": id}))
}

// FindBySlug retrieves a business by slug. Excludes soft-deleted businesses.
func (r *businessRepository) FindBySlug(ctx context.Context, slug string) (*models.Business, error) {
	return r.findOne(ctx, notDeleted(bson.M{"slug": slug}))
}

func (r *businessRepository) findOne(ctx context.Context, filter bson.M) (*models.Business, error) {
	var business models.Business
	err := r.collection.FindOne(ctx, filter).Decode(&business)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, err
	}

	return &business, nil
}

// FindByMemberID returns paginated businesses where the user holds an
// accepted membership.
func (r *businessRepository) FindByMemberID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Business, int, error) {
	skip := (page - 1) * limit

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"deletedAt": bson.M{"$exists": false}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.MembershipsCollection,
			"localField":   "_id",
			"foreignField": "businessId",
			"as":           "members",
		}}},
		{{Key: "$match", Value: bson.M{"members": bson.M{"$elemMatch": bson.M{
			"userId":     userID,
			"acceptedAt": bson.M{"$exists": true},
		}}}}},
		{{Key: "$project", Value: bson.M{"members": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	countPipeline := append(append(mongo.Pipeline{}, pipeline...), bson.D{{Key: "$count", Value: "total"}})
	countCursor, err := r.collection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, err
	}
	defer countCursor.Close(ctx)

	var countResult []struct {
		Total int `bson:"total"`
	}
	if err := countCursor.All(ctx, &countResult); err != nil {
		return nil, 0, err
	}

	total := 0
	if len(countResult) > 0 {
		total = countResult[0].Total
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: int64(skip)}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, 0, err
	}

	if businesses == nil {
		businesses = []models.Business{}
	}

	return businesses, total, nil
}

// FindAll returns every live business, newest first.
func (r *businessRepository) FindAll(ctx context.Context, page, limit int) ([]models.Business, int, error) {
	filter := notDeleted(bson.M{})

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

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, 0, err
	}

	if businesses == nil {
		businesses = []models.Business{}
	}

	return businesses, int(total), nil
}

// FindIDsByOwnerID returns the ids of live businesses whose ownerId is ownerID.
func (r *businessRepository) FindIDsByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := r.collection.Find(ctx, notDeleted(bson.M{"ownerId": ownerID}), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// CountByOwnerID returns the number of live businesses owned by a user.
func (r *businessRepository) CountByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, notDeleted(bson.M{"ownerId": ownerID}))
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// FindPlansByOwnerID returns the distinct plans of live businesses owned by a user.
func (r *businessRepository) FindPlansByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "plan", notDeleted(bson.M{"ownerId": ownerID}))
	if err != nil {
		return nil, err
	}

	plans := make([]string, 0, len(values))
	for _, v := range values {
		if plan, ok := v.(string); ok {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

// Update saves the profile fields of a business. OwnerID is never written.
func (r *businessRepository) Update(ctx context.Context, business *models.Business) error {
	business.UpdatedAt = time.Now()

	return r.UpdateFields(ctx, business.ID, bson.M{
		"name":        business.Name,
		"industry":    business.Industry,
		"description": business.Description,
		"updatedAt":   business.UpdatedAt,
	})
}

// UpdateFields sets arbitrary fields on a live business.
func (r *businessRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if _, ok := fields["updatedAt"]; !ok {
		fields["updatedAt"] = time.Now()
	}

	result, err := r.collection.UpdateOne(ctx, notDeleted(bson.M{"_id": id}), bson.M{"$set": fields})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrBusinessNotFound
	}

	return nil
}

// SoftDelete marks a business as deleted.
func (r *businessRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	return r.UpdateFields(ctx, id, bson.M{"deletedAt": time.Now()})
}
