package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"
	"bizsuite/internal/repository"
	"bizsuite/internal/storage"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// offerRefField is the data field of a lead that points at the offer it came from.
const offerRefField = "offerId"

// RecordService handles business logic shared by every tenant record kind.
type RecordService struct {
	recordRepo     repository.RecordRepository
	membershipRepo repository.MembershipRepository
	storage        storage.Storage
	exportExpiry   time.Duration
	now            func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(
	recordRepo repository.RecordRepository,
	membershipRepo repository.MembershipRepository,
	store storage.Storage,
	exportExpiry time.Duration,
) *RecordService {
	return &RecordService{
		recordRepo:     recordRepo,
		membershipRepo: membershipRepo,
		storage:        store,
		exportExpiry:   exportExpiry,
		now:            time.Now,
	}
}

// ListRecords returns paginated records of one kind in a business.
func (s *RecordService) ListRecords(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, filter repository.RecordFilter, page, limit int) (*models.RecordListResponse, error) {
	page, limit = normalizePage(page, limit)

	records, total, err := s.recordRepo.FindByBusiness(ctx, businessID, kind, filter, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.RecordListResponse{
		Items:      records,
		Pagination: paginate(page, limit, total),
	}, nil
}

// GetRecord retrieves a record of the given kind.
func (s *RecordService) GetRecord(ctx context.Context, kind models.RecordKind, id primitive.ObjectID) (*models.Record, error) {
	return s.recordRepo.FindByID(ctx, kind, id)
}

// CreateRecord creates a record in businessID.
func (s *RecordService) CreateRecord(ctx context.Context, businessID, userID primitive.ObjectID, kind models.RecordKind, req *models.CreateRecordRequest) (*models.Record, error) {
	record := newRecord(businessID, userID, kind, req)
	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateRecord applies the set fields of req. Kind and business never change.
func (s *RecordService) UpdateRecord(ctx context.Context, record *models.Record, req *models.UpdateRecordRequest) (*models.Record, error) {
	updated := *record
	if req.Title != nil {
		updated.Title = strings.TrimSpace(*req.Title)
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}
	if req.Data != nil {
		updated.Data = req.Data
	}

	if err := s.recordRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRecord deletes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, record *models.Record) error {
	return s.recordRepo.Delete(ctx, record.Kind, record.ID)
}

// AssignRecord assigns a record to an accepted member of its business.
func (s *RecordService) AssignRecord(ctx context.Context, record *models.Record, assigneeID primitive.ObjectID) (*models.Record, error) {
	member, err := s.membershipRepo.FindByBusinessAndUser(ctx, record.BusinessID, assigneeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotBusinessMember) {
			return nil, apperrors.ErrAssigneeInvalid
		}
		return nil, err
	}
	if !member.IsAccepted() {
		return nil, apperrors.ErrAssigneeInvalid
	}

	return s.setFields(ctx, record, bson.M{"assigneeId": assigneeID})
}

// BulkUpdateStatus sets the status of the listed records of businessID.
// Ids from other businesses are silently skipped.
func (s *RecordService) BulkUpdateStatus(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, req *models.BulkUpdateRequest) (*models.BulkResult, error) {
	ids := make([]primitive.ObjectID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidRecordID, raw)
		}
		ids = append(ids, id)
	}

	count, err := s.recordRepo.BulkUpdateStatus(ctx, businessID, kind, ids, req.Status)
	if err != nil {
		return nil, err
	}

	return &models.BulkResult{Count: count}, nil
}

// ImportRecords creates a batch of records in businessID.
func (s *RecordService) ImportRecords(ctx context.Context, businessID, userID primitive.ObjectID, kind models.RecordKind, req *models.ImportRecordsRequest) (*models.BulkResult, error) {
	records := make([]*models.Record, 0, len(req.Items))
	for i := range req.Items {
		records = append(records, newRecord(businessID, userID, kind, &req.Items[i]))
	}

	count, err := s.recordRepo.CreateMany(ctx, records)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"business_id": businessID.Hex(),
		"kind":        kind,
		"count":       count,
	}).Info("Records imported")

	return &models.BulkResult{Count: int64(count)}, nil
}

// ExportRecords writes every record of one kind in businessID to a CSV file in
// object storage and returns a temporary download link.
func (s *RecordService) ExportRecords(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind) (*models.ExportResponse, error) {
	if s.storage == nil {
		return nil, apperrors.ErrExportUnavailable
	}

	records, err := s.recordRepo.FindAllByBusiness(ctx, businessID, kind)
	if err != nil {
		return nil, err
	}

	body, err := encodeCSV(records)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := storage.ExportKey(businessID.Hex(), string(kind), now)
	if err := s.storage.PutObject(ctx, key, bytes.NewReader(body), "text/csv"); err != nil {
		return nil, err
	}

	url, err := s.storage.GetPresignedURL(ctx, key, s.exportExpiry)
	if err != nil {
		return nil, err
	}

	return &models.ExportResponse{
		URL:       url,
		Count:     len(records),
		ExpiresAt: now.Add(s.exportExpiry),
	}, nil
}

// SetPublished publishes or unpublishes an offer.
func (s *RecordService) SetPublished(ctx context.Context, record *models.Record, published bool) (*models.Record, error) {
	return s.setFields(ctx, record, bson.M{"published": published})
}

// SetAutomation replaces the automation settings of an offer.
func (s *RecordService) SetAutomation(ctx context.Context, record *models.Record, automation map[string]interface{}) (*models.Record, error) {
	return s.setFields(ctx, record, bson.M{"automation": automation})
}

// DuplicateRecord copies a record into a new unpublished draft owned by userID.
func (s *RecordService) DuplicateRecord(ctx context.Context, record *models.Record, userID primitive.ObjectID) (*models.Record, error) {
	copied := &models.Record{
		Kind:       record.Kind,
		BusinessID: record.BusinessID,
		Title:      record.Title + " (copy)",
		Status:     record.Status,
		Automation: record.Automation,
		Data:       record.Data,
		CreatedBy:  userID,
	}

	if err := s.recordRepo.Create(ctx, copied); err != nil {
		return nil, err
	}
	return copied, nil
}

// OfferAnalytics summarises an offer by the leads that reference it.
func (s *RecordService) OfferAnalytics(ctx context.Context, offer *models.Record) (*models.OfferAnalytics, error) {
	leads, err := s.recordRepo.CountByDataField(ctx, offer.BusinessID, models.KindLead, offerRefField, offer.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.OfferAnalytics{
		OfferID:       offer.ID,
		Published:     offer.Published,
		AssignedLeads: leads,
	}, nil
}

// Dashboard returns record counts per kind for businessID.
func (s *RecordService) Dashboard(ctx context.Context, businessID primitive.ObjectID) (*models.DashboardResponse, error) {
	counts, err := s.recordRepo.CountByKind(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return &models.DashboardResponse{Counts: counts}, nil
}

func (s *RecordService) setFields(ctx context.Context, record *models.Record, fields bson.M) (*models.Record, error) {
	if err := s.recordRepo.SetFields(ctx, record.Kind, record.ID, fields); err != nil {
		return nil, err
	}
	return s.recordRepo.FindByID(ctx, record.Kind, record.ID)
}

func newRecord(businessID, userID primitive.ObjectID, kind models.RecordKind, req *models.CreateRecordRequest) *models.Record {
	return &models.Record{
		Kind:       kind,
		BusinessID: businessID,
		Title:      strings.TrimSpace(req.Title),
		Status:     req.Status,
		Data:       req.Data,
		CreatedBy:  userID,
	}
}

// encodeCSV writes one row per record. Data keys become columns, sorted.
func encodeCSV(records []models.Record) ([]byte, error) {
	keySet := make(map[string]struct{})
	for _, r := range records {
		for k := range r.Data {
			keySet[k] = struct{}{}
		}
	}
	dataKeys := make([]string, 0, len(keySet))
	for k := range keySet {
		dataKeys = append(dataKeys, k)
	}
	sort.Strings(dataKeys)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{"id", "title", "status", "assigneeId", "createdAt"}, dataKeys...)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range records {
		assignee := ""
		if r.AssigneeID != nil {
			assignee = r.AssigneeID.Hex()
		}
		row := []string{r.ID.Hex(), r.Title, r.Status, assignee, r.CreatedAt.UTC().Format(time.RFC3339)}
		for _, k := range dataKeys {
			v, ok := r.Data[k]
			if !ok || v == nil {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprint(v))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
