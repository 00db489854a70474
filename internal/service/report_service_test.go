package service

import (
	"context"
	"testing"
	"time"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"
	"bizsuite/internal/queue"
	queuemocks "bizsuite/internal/queue/mocks"
	repomocks "bizsuite/internal/repository/mocks"
	storagemocks "bizsuite/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type reportMocks struct {
	reports *repomocks.MockGeneratedReportRepository
	records *repomocks.MockRecordRepository
	queue   *queuemocks.MockQueue
	storage *storagemocks.MockStorage
}

func newTestReportService(ctrl *gomock.Controller) (*ReportService, reportMocks) {
	m := reportMocks{
		reports: repomocks.NewMockGeneratedReportRepository(ctrl),
		records: repomocks.NewMockRecordRepository(ctrl),
		queue:   queuemocks.NewMockQueue(ctrl),
		storage: storagemocks.NewMockStorage(ctrl),
	}
	svc := NewReportService(ReportServiceConfig{
		ReportRepo: m.reports,
		RecordRepo: m.records,
		Queue:      m.queue,
		Storage:    m.storage,
		LinkExpiry: time.Hour,
	})
	return svc, m
}

func TestReportService_GenerateReport(t *testing.T) {
	businessID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	t.Run("creates pending report and enqueues job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestReportService(ctrl)
		reportID := primitive.NewObjectID()

		m.reports.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.GeneratedReport) error {
				r.ID = reportID
				r.Status = models.ReportPending
				assert.Equal(t, userID, r.RequestedBy)
				return nil
			})
		m.queue.EXPECT().Enqueue(queue.ReportJob{
			ReportID:   reportID,
			BusinessID: businessID,
			Category:   models.CategorySales,
		}).Return(nil)

		report, err := svc.GenerateReport(context.Background(), businessID, userID, models.CategorySales)

		require.NoError(t, err)
		assert.Equal(t, models.ReportPending, report.Status)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestReportService(ctrl)

		_, err := svc.GenerateReport(context.Background(), businessID, userID, "payroll")

		assert.ErrorIs(t, err, apperrors.ErrUnknownCategory)
	})

	t.Run("removes report when queue is full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestReportService(ctrl)
		reportID := primitive.NewObjectID()

		m.reports.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.GeneratedReport) error {
				r.ID = reportID
				return nil
			})
		m.queue.EXPECT().Enqueue(gomock.Any()).Return(queue.ErrQueueFull)
		m.reports.EXPECT().Delete(gomock.Any(), reportID).Return(nil)

		report, err := svc.GenerateReport(context.Background(), businessID, userID, models.CategoryHR)

		assert.Nil(t, report)
		assert.Equal(t, apperrors.ErrReportQueueFull, err)
	})

	t.Run("closed queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestReportService(ctrl)

		m.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.queue.EXPECT().Enqueue(gomock.Any()).Return(queue.ErrQueueClosed)
		m.reports.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.GenerateReport(context.Background(), businessID, userID, models.CategoryHR)

		assert.ErrorIs(t, err, queue.ErrQueueClosed)
	})
}

func TestReportService_DescribeReport(t *testing.T) {
	t.Run("ready report gets a link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestReportService(ctrl)
		report := &models.GeneratedReport{ID: primitive.NewObjectID(), Status: models.ReportReady, FileKey: "reports/a/b.json"}

		m.storage.EXPECT().GetPresignedURL(gomock.Any(), "reports/a/b.json", time.Hour).Return("https://s3/report", nil)

		resp, err := svc.DescribeReport(context.Background(), report)

		require.NoError(t, err)
		assert.Equal(t, "https://s3/report", resp.DownloadURL)
	})

	t.Run("pending report has no link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestReportService(ctrl)

		resp, err := svc.DescribeReport(context.Background(), &models.GeneratedReport{Status: models.ReportPending})

		require.NoError(t, err)
		assert.Empty(t, resp.DownloadURL)
	})
}

func TestReportService_ListReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestReportService(ctrl)
	businessID := primitive.NewObjectID()

	categories := []string{models.CategoryMarketing, models.CategorySales}

	t.Run("filters by readable categories", func(t *testing.T) {
		m.reports.EXPECT().FindByBusinessID(gomock.Any(), businessID, categories, 2, 5).Return([]models.GeneratedReport{{}}, 6, nil)

		resp, err := svc.ListReports(context.Background(), businessID, categories, 2, 5)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Pagination.TotalPages)
	})

	t.Run("no readable categories skips the query", func(t *testing.T) {
		resp, err := svc.ListReports(context.Background(), businessID, nil, 1, 10)

		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.Equal(t, 0, resp.Pagination.TotalItems)
	})
}

func TestReportService_DeleteReport(t *testing.T) {
	t.Run("removes file and document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestReportService(ctrl)
		report := &models.GeneratedReport{ID: primitive.NewObjectID(), FileKey: "reports/a/b.json"}

		m.storage.EXPECT().DeleteObject(gomock.Any(), "reports/a/b.json").Return(nil)
		m.reports.EXPECT().Delete(gomock.Any(), report.ID).Return(nil)

		assert.NoError(t, svc.DeleteReport(context.Background(), report))
	})

	t.Run("keeps document when file removal fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestReportService(ctrl)
		report := &models.GeneratedReport{ID: primitive.NewObjectID(), FileKey: "reports/a/b.json"}

		m.storage.EXPECT().DeleteObject(gomock.Any(), "reports/a/b.json").Return(assert.AnError)

		assert.ErrorIs(t, svc.DeleteReport(context.Background(), report), assert.AnError)
	})

	t.Run("failed report without file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestReportService(ctrl)
		report := &models.GeneratedReport{ID: primitive.NewObjectID(), Status: models.ReportFailed}

		m.reports.EXPECT().Delete(gomock.Any(), report.ID).Return(nil)

		assert.NoError(t, svc.DeleteReport(context.Background(), report))
	})
}

func TestReportService_CategoryReport(t *testing.T) {
	businessID := primitive.NewObjectID()
	all := map[models.RecordKind]int64{
		models.KindLead:          5,
		models.KindOffer:         2,
		models.KindReport:        1,
		models.KindKPI:           30,
		models.KindLeadForm:      3,
		models.KindCustdevSurvey: 4,
	}

	tests := []struct {
		category string
		expected map[models.RecordKind]int64
	}{
		{models.CategorySales, map[models.RecordKind]int64{models.KindLead: 5, models.KindOffer: 2}},
		{models.CategoryFinancial, map[models.RecordKind]int64{models.KindKPI: 30, models.KindReport: 1}},
		{models.CategoryHR, map[models.RecordKind]int64{models.KindKPI: 30, models.KindCustdevSurvey: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestReportService(ctrl)

			m.records.EXPECT().CountByKind(gomock.Any(), businessID).Return(all, nil)

			resp, err := svc.CategoryReport(context.Background(), businessID, tt.category)

			require.NoError(t, err)
			assert.Equal(t, tt.category, resp.Category)
			assert.Equal(t, tt.expected, resp.Counts)
		})
	}
}
