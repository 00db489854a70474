package service

import (
	"context"

	"bizsuite/internal/models"
	"bizsuite/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KPIService manages the KPI configuration of a business.
type KPIService struct {
	repo repository.KPIConfigRepository
}

// NewKPIService creates a new KPIService.
func NewKPIService(repo repository.KPIConfigRepository) *KPIService {
	return &KPIService{repo: repo}
}

// GetConfig returns the KPI configuration, empty when none was saved.
func (s *KPIService) GetConfig(ctx context.Context, businessID primitive.ObjectID) (*models.KPIConfig, error) {
	return s.repo.FindByBusinessID(ctx, businessID)
}

// Configure replaces the KPI settings.
func (s *KPIService) Configure(ctx context.Context, businessID primitive.ObjectID, settings map[string]interface{}) (*models.KPIConfig, error) {
	return s.repo.Set(ctx, businessID, bson.M{"settings": settings})
}

// SetTargets replaces the KPI targets.
func (s *KPIService) SetTargets(ctx context.Context, businessID primitive.ObjectID, targets map[string]float64) (*models.KPIConfig, error) {
	return s.repo.Set(ctx, businessID, bson.M{"targets": targets})
}

// ConfigureAlerts replaces the KPI alerts.
func (s *KPIService) ConfigureAlerts(ctx context.Context, businessID primitive.ObjectID, alerts []models.KPIAlert) (*models.KPIConfig, error) {
	return s.repo.Set(ctx, businessID, bson.M{"alerts": alerts})
}

// CreateCustomKPI adds or replaces a custom KPI by code.
func (s *KPIService) CreateCustomKPI(ctx context.Context, businessID primitive.ObjectID, kpi models.CustomKPI) (*models.KPIConfig, error) {
	return s.repo.AddCustomKPI(ctx, businessID, kpi)
}
