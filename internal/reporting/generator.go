// Package reporting builds report files from tenant record counts.
package reporting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"
	"bizsuite/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks bizsuite/internal/reporting Generator

// Result is the outcome of a successful generation.
type Result struct {
	FileKey string
	Summary map[models.RecordKind]int64
}

// Generator produces the file of one report.
type Generator interface {
	// Generate builds and stores the report. The returned key points at the uploaded file.
	Generate(ctx context.Context, reportID, businessID primitive.ObjectID, category string) (*Result, error)
}

// RecordCounter counts the records of a business per kind.
type RecordCounter interface {
	CountByKind(ctx context.Context, businessID primitive.ObjectID) (map[models.RecordKind]int64, error)
}

// categoryKinds lists the record kinds summarised by each report category.
var categoryKinds = map[string][]models.RecordKind{
	models.CategorySales:     {models.KindLead, models.KindOffer},
	models.CategoryMarketing: {models.KindOffer, models.KindLeadForm, models.KindCustdevSurvey},
	models.CategoryFinancial: {models.KindKPI, models.KindReport},
	models.CategoryHR:        {models.KindKPI, models.KindCustdevSurvey},
}

// KindsFor returns the record kinds covered by a category.
func KindsFor(category string) ([]models.RecordKind, error) {
	kinds, ok := categoryKinds[category]
	if !ok {
		return nil, fmt.Errorf("%w %q", apperrors.ErrUnknownCategory, category)
	}
	return kinds, nil
}

// document is the JSON file written for a report.
type document struct {
	ReportID    string                      `json:"reportId"`
	BusinessID  string                      `json:"businessId"`
	Category    string                      `json:"category"`
	GeneratedAt time.Time                   `json:"generatedAt"`
	Counts      map[models.RecordKind]int64 `json:"counts"`
}

// SummaryGenerator writes a JSON summary of record counts to object storage.
type SummaryGenerator struct {
	counter RecordCounter
	storage storage.Storage
	now     func() time.Time
}

// NewSummaryGenerator creates a SummaryGenerator.
func NewSummaryGenerator(counter RecordCounter, store storage.Storage) *SummaryGenerator {
	return &SummaryGenerator{counter: counter, storage: store, now: time.Now}
}

// Generate counts the category's records and uploads the summary.
func (g *SummaryGenerator) Generate(ctx context.Context, reportID, businessID primitive.ObjectID, category string) (*Result, error) {
	kinds, err := KindsFor(category)
	if err != nil {
		return nil, err
	}

	all, err := g.counter.CountByKind(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	summary := make(map[models.RecordKind]int64, len(kinds))
	for _, kind := range kinds {
		summary[kind] = all[kind]
	}

	body, err := json.Marshal(document{
		ReportID:    reportID.Hex(),
		BusinessID:  businessID.Hex(),
		Category:    category,
		GeneratedAt: g.now().UTC(),
		Counts:      summary,
	})
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	key := storage.ReportKey(businessID.Hex(), reportID.Hex())
	if err := g.storage.PutObject(ctx, key, bytes.NewReader(body), "application/json"); err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	return &Result{FileKey: key, Summary: summary}, nil
}

// Ensure SummaryGenerator implements Generator
var _ Generator = (*SummaryGenerator)(nil)
