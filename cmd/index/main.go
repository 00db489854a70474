package main

import (
	"context"
	"time"

	"bizsuite/internal/config"
	"bizsuite/internal/database"
	"bizsuite/internal/logger"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	logrus.Info("Starting migration...")

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	logrus.Info("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Accounts indexes
	createIndex(ctx, db, database.AccountsCollection, bson.D{{Key: "email", Value: 1}}, options.Index().SetUnique(true))

	// Businesses indexes. Slug uniqueness among live businesses is enforced by
	// the service since soft-deleted rows keep their slug.
	createIndex(ctx, db, database.BusinessesCollection, bson.D{{Key: "slug", Value: 1}}, nil)
	createIndex(ctx, db, database.BusinessesCollection, bson.D{{Key: "ownerId", Value: 1}}, nil)
	createIndex(ctx, db, database.BusinessesCollection, bson.D{{Key: "deletedAt", Value: 1}}, nil)

	// One membership per business and user
	createIndex(ctx, db, database.MembershipsCollection, bson.D{
		{Key: "businessId", Value: 1},
		{Key: "userId", Value: 1},
	}, options.Index().SetUnique(true))
	createIndex(ctx, db, database.MembershipsCollection, bson.D{
		{Key: "userId", Value: 1},
		{Key: "acceptedAt", Value: 1},
	}, nil)

	// Records indexes
	createIndex(ctx, db, database.RecordsCollection, bson.D{
		{Key: "businessId", Value: 1},
		{Key: "kind", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
	createIndex(ctx, db, database.RecordsCollection, bson.D{
		{Key: "businessId", Value: 1},
		{Key: "kind", Value: 1},
		{Key: "status", Value: 1},
	}, nil)
	createIndex(ctx, db, database.RecordsCollection, bson.D{{Key: "assigneeId", Value: 1}}, options.Index().SetSparse(true))

	// KPI configuration, one per business
	createIndex(ctx, db, database.KPIConfigsCollection, bson.D{{Key: "businessId", Value: 1}}, options.Index().SetUnique(true))

	// Generated reports indexes
	createIndex(ctx, db, database.GeneratedReportsCollection, bson.D{
		{Key: "businessId", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		logrus.WithError(err).WithField("collection", collection).Warn("Failed to create index")
		return
	}

	logrus.WithFields(logrus.Fields{"index": name, "collection": collection}).Info("Created index")
}
