package service

import (
	"context"
	"errors"
	"time"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"
	"bizsuite/internal/queue"
	"bizsuite/internal/reporting"
	"bizsuite/internal/repository"
	"bizsuite/internal/storage"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportService schedules report generation and serves generated reports.
type ReportService struct {
	reportRepo repository.GeneratedReportRepository
	recordRepo repository.RecordRepository
	queue      queue.Queue
	storage    storage.Storage
	linkExpiry time.Duration
}

// ReportServiceConfig holds the collaborators of ReportService.
type ReportServiceConfig struct {
	ReportRepo repository.GeneratedReportRepository
	RecordRepo repository.RecordRepository
	Queue      queue.Queue
	Storage    storage.Storage
	LinkExpiry time.Duration
}

// NewReportService creates a new ReportService.
func NewReportService(cfg ReportServiceConfig) *ReportService {
	return &ReportService{
		reportRepo: cfg.ReportRepo,
		recordRepo: cfg.RecordRepo,
		queue:      cfg.Queue,
		storage:    cfg.Storage,
		linkExpiry: cfg.LinkExpiry,
	}
}

// GenerateReport records a pending report and queues its generation.
func (s *ReportService) GenerateReport(ctx context.Context, businessID, userID primitive.ObjectID, category string) (*models.GeneratedReport, error) {
	if _, err := reporting.KindsFor(category); err != nil {
		return nil, err
	}

	report := &models.GeneratedReport{
		BusinessID:  businessID,
		Category:    category,
		RequestedBy: userID,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	job := queue.ReportJob{
		ReportID:   report.ID,
		BusinessID: businessID,
		Category:   category,
	}
	if err := s.queue.Enqueue(job); err != nil {
		// The report will never be produced
		_ = s.reportRepo.Delete(ctx, report.ID)
		if errors.Is(err, queue.ErrQueueFull) {
			return nil, apperrors.ErrReportQueueFull
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"report_id":   report.ID.Hex(),
		"business_id": businessID.Hex(),
		"category":    category,
	}).Info("Report queued")

	return report, nil
}

// GetReport retrieves a generated report by ID.
func (s *ReportService) GetReport(ctx context.Context, id primitive.ObjectID) (*models.GeneratedReport, error) {
	return s.reportRepo.FindByID(ctx, id)
}

// DescribeReport adds a download link to a ready report.
func (s *ReportService) DescribeReport(ctx context.Context, report *models.GeneratedReport) (*models.GeneratedReportResponse, error) {
	resp := &models.GeneratedReportResponse{GeneratedReport: *report}
	if report.Status != models.ReportReady || report.FileKey == "" || s.storage == nil {
		return resp, nil
	}

	url, err := s.storage.GetPresignedURL(ctx, report.FileKey, s.linkExpiry)
	if err != nil {
		return nil, err
	}
	resp.DownloadURL = url
	return resp, nil
}

// ListReports returns paginated generated reports of a business, restricted
// to the given categories.
func (s *ReportService) ListReports(ctx context.Context, businessID primitive.ObjectID, categories []string, page, limit int) (*models.GeneratedReportListResponse, error) {
	page, limit = normalizePage(page, limit)

	if len(categories) == 0 {
		return &models.GeneratedReportListResponse{
			Items:      []models.GeneratedReport{},
			Pagination: paginate(page, limit, 0),
		}, nil
	}

	reports, total, err := s.reportRepo.FindByBusinessID(ctx, businessID, categories, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.GeneratedReportListResponse{
		Items:      reports,
		Pagination: paginate(page, limit, total),
	}, nil
}

// DeleteReport removes a generated report and its file.
func (s *ReportService) DeleteReport(ctx context.Context, report *models.GeneratedReport) error {
	if report.FileKey != "" && s.storage != nil {
		if err := s.storage.DeleteObject(ctx, report.FileKey); err != nil {
			return err
		}
	}
	return s.reportRepo.Delete(ctx, report.ID)
}

// CategoryReport returns live record counts for the kinds a category covers.
func (s *ReportService) CategoryReport(ctx context.Context, businessID primitive.ObjectID, category string) (*models.CategoryReportResponse, error) {
	kinds, err := reporting.KindsFor(category)
	if err != nil {
		return nil, err
	}

	all, err := s.recordRepo.CountByKind(ctx, businessID)
	if err != nil {
		return nil, err
	}

	counts := make(map[models.RecordKind]int64, len(kinds))
	for _, k := range kinds {
		counts[k] = all[k]
	}

	return &models.CategoryReportResponse{Category: category, Counts: counts}, nil
}
