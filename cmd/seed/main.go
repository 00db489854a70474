package main

import (
	"context"
	"fmt"
	"time"

	"bizsuite/internal/authz"
	"bizsuite/internal/config"
	"bizsuite/internal/database"
	"bizsuite/internal/logger"
	"bizsuite/internal/models"
	"bizsuite/internal/repository"
	"bizsuite/pkg/auth"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const seedPassword = "password123"

var seededCollections = []string{
	database.AccountsCollection,
	database.BusinessesCollection,
	database.MembershipsCollection,
	database.RecordsCollection,
	database.KPIConfigsCollection,
	database.GeneratedReportsCollection,
}

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	logrus.Info("Starting seed...")

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()
	clearCollections(ctx, mongoDB.Database)

	accounts := repository.NewAccountRepository(mongoDB.Database)
	businesses := repository.NewBusinessRepository(mongoDB.Database)
	memberships := repository.NewMembershipRepository(mongoDB.Database)
	records := repository.NewRecordRepository(mongoDB.Database)

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to hash seed password")
	}

	// One account per membership role
	members := make(map[authz.Role]*models.Account, len(authz.AllRoles))
	for _, role := range authz.AllRoles {
		account := &models.Account{
			Email:    fmt.Sprintf("%s@demo.local", role),
			Password: hash,
			Name:     fmt.Sprintf("Demo %s", role),
		}
		if err := accounts.Create(ctx, account); err != nil {
			logrus.WithError(err).Fatalf("Failed to seed %s account", role)
		}
		members[role] = account
	}

	// Platform administrator with no business membership
	platformAdmin := &models.Account{
		Email:       "platform@demo.local",
		Password:    hash,
		Name:        "Platform Admin",
		GlobalRoles: []string{"super_admin"},
	}
	if err := accounts.Create(ctx, platformAdmin); err != nil {
		logrus.WithError(err).Fatal("Failed to seed platform admin")
	}

	owner := members[authz.RoleOwner]
	business := &models.Business{
		Name:     "Demo Trading",
		Slug:     "demo-trading",
		Industry: "retail",
		OwnerID:  owner.ID,
		Plan:     models.PlanPro,
	}
	if err := businesses.Create(ctx, business); err != nil {
		logrus.WithError(err).Fatal("Failed to seed business")
	}

	now := time.Now()
	for _, role := range authz.AllRoles {
		account := members[role]
		membership := &models.Membership{
			BusinessID: business.ID,
			UserID:     account.ID,
			Role:       string(role),
			InvitedBy:  &owner.ID,
			AcceptedAt: &now,
		}
		if err := memberships.Create(ctx, membership); err != nil {
			logrus.WithError(err).Fatalf("Failed to seed %s membership", role)
		}
		if err := accounts.SetDefaultBusiness(ctx, account.ID, &business.ID); err != nil {
			logrus.WithError(err).Fatal("Failed to set default business")
		}
	}

	seedRecords(ctx, records, business.ID, members)

	logrus.WithFields(logrus.Fields{
		"business": business.Slug,
		"accounts": len(members) + 1,
		"password": seedPassword,
	}).Info("Seed completed successfully!")
}

func clearCollections(ctx context.Context, db *mongo.Database) {
	for _, name := range seededCollections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			logrus.WithError(err).Fatalf("Failed to clear %s", name)
		}
	}
}

func seedRecords(ctx context.Context, records repository.RecordRepository, businessID primitive.ObjectID, members map[authz.Role]*models.Account) {
	salesHead := members[authz.RoleSalesHead].ID
	marketer := members[authz.RoleMarketer].ID

	offer := &models.Record{
		Kind:       models.KindOffer,
		BusinessID: businessID,
		Title:      "Spring wholesale discount",
		Published:  true,
		Data:       map[string]interface{}{"discount": 15},
		CreatedBy:  marketer,
	}
	if err := records.Create(ctx, offer); err != nil {
		logrus.WithError(err).Fatal("Failed to seed offer")
	}

	seed := []*models.Record{
		{Kind: models.KindLead, Title: "Dilnoza - wholesale inquiry", Status: "new", Data: map[string]interface{}{"offerId": offer.ID.Hex()}},
		{Kind: models.KindLead, Title: "Rustam - repeat order", Status: "contacted", AssigneeID: &salesHead},
		{Kind: models.KindLead, Title: "Malika - website form", Status: "new"},
		{Kind: models.KindKPI, Title: "Daily actuals", Data: map[string]interface{}{"leads_count": 3, "revenue": 1200}},
		{Kind: models.KindLeadForm, Title: "Website contact form", Data: map[string]interface{}{"fields": []string{"name", "phone"}}},
		{Kind: models.KindCustdevSurvey, Title: "Why customers churn"},
		{Kind: models.KindReport, Title: "Q1 sales notes"},
	}
	for _, record := range seed {
		record.BusinessID = businessID
		record.CreatedBy = salesHead
		if err := records.Create(ctx, record); err != nil {
			logrus.WithError(err).WithField("kind", record.Kind).Fatal("Failed to seed record")
		}
	}
}
