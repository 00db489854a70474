package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/middleware"
	"bizsuite/internal/models"
	"bizsuite/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReportHandler_Load(t *testing.T) {
	t.Run("not found is an untyped nil", func(t *testing.T) {
		mockService := &mocks.MockReportService{
			GetReportFunc: func(ctx context.Context, id primitive.ObjectID) (*models.GeneratedReport, error) {
				return nil, apperrors.ErrReportNotFound
			},
		}

		res, err := NewReportHandler(mockService).Load(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(t, err, apperrors.ErrReportNotFound)
		assert.Nil(t, res)
	})
}

func TestReportHandler_Generate(t *testing.T) {
	businessID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockReportService)
		expectedStatus int
	}{
		{
			name: "queues report",
			body: models.GenerateReportRequest{Category: models.CategorySales},
			mockSetup: func(m *mocks.MockReportService) {
				m.GenerateReportFunc = func(ctx context.Context, bid, uid primitive.ObjectID, category string) (*models.GeneratedReport, error) {
					assert.Equal(t, businessID, bid)
					assert.Equal(t, userID, uid)
					return &models.GeneratedReport{ID: primitive.NewObjectID(), BusinessID: bid, Category: category, Status: models.ReportPending}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown category",
			body:           models.GenerateReportRequest{Category: "legal"},
			mockSetup:      func(m *mocks.MockReportService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "queue full",
			body: models.GenerateReportRequest{Category: models.CategoryHR},
			mockSetup: func(m *mocks.MockReportService) {
				m.GenerateReportFunc = func(ctx context.Context, bid, uid primitive.ObjectID, category string) (*models.GeneratedReport, error) {
					return nil, apperrors.ErrReportQueueFull
				}
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockReportService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/generated-reports", setUserID(userID.Hex()), setBusinessID(businessID), NewReportHandler(mockService).Generate)

			w := doRequest(router, http.MethodPost, "/generated-reports", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestReportHandler_List(t *testing.T) {
	businessID := primitive.NewObjectID()
	readable := []string{models.CategoryMarketing, models.CategorySales}

	t.Run("passes readable categories", func(t *testing.T) {
		mockService := &mocks.MockReportService{
			ListReportsFunc: func(ctx context.Context, bid primitive.ObjectID, categories []string, page, limit int) (*models.GeneratedReportListResponse, error) {
				assert.Equal(t, businessID, bid)
				assert.Equal(t, readable, categories)
				assert.Equal(t, 2, page)
				return &models.GeneratedReportListResponse{
					Items:      []models.GeneratedReport{{ID: primitive.NewObjectID(), Category: models.CategorySales}},
					Pagination: models.Pagination{Page: page, Limit: limit, TotalItems: 11, TotalPages: 2},
				}, nil
			},
		}

		router := gin.New()
		router.GET("/generated-reports", setBusinessID(businessID), setValue(middleware.CategoriesKey, readable), NewReportHandler(mockService).List)

		w := doRequest(router, http.MethodGet, "/generated-reports?page=2", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Len(t, data["items"], 1)
	})

	t.Run("without category gate", func(t *testing.T) {
		router := gin.New()
		router.GET("/generated-reports", setBusinessID(businessID), NewReportHandler(&mocks.MockReportService{}).List)

		w := doRequest(router, http.MethodGet, "/generated-reports", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportHandler_GetAndDelete(t *testing.T) {
	completed := time.Now()
	report := &models.GeneratedReport{
		ID:          primitive.NewObjectID(),
		BusinessID:  primitive.NewObjectID(),
		Category:    models.CategoryFinancial,
		Status:      models.ReportReady,
		FileKey:     "reports/x.csv",
		CompletedAt: &completed,
	}

	t.Run("get includes download link", func(t *testing.T) {
		mockService := &mocks.MockReportService{
			DescribeReportFunc: func(ctx context.Context, r *models.GeneratedReport) (*models.GeneratedReportResponse, error) {
				return &models.GeneratedReportResponse{GeneratedReport: *r, DownloadURL: "https://s3/reports/x.csv"}, nil
			},
		}

		router := gin.New()
		router.GET("/generated-reports/:id", setValue(middleware.ResourceKey, report), NewReportHandler(mockService).Get)

		w := doRequest(router, http.MethodGet, "/generated-reports/"+report.ID.Hex(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, "https://s3/reports/x.csv", data["downloadUrl"])
		assert.NotContains(t, data, "fileKey")
	})

	t.Run("get without gate", func(t *testing.T) {
		router := gin.New()
		router.GET("/generated-reports/:id", NewReportHandler(&mocks.MockReportService{}).Get)

		w := doRequest(router, http.MethodGet, "/generated-reports/"+report.ID.Hex(), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		deleted := false
		mockService := &mocks.MockReportService{
			DeleteReportFunc: func(ctx context.Context, r *models.GeneratedReport) error {
				deleted = r.ID == report.ID
				return nil
			},
		}

		router := gin.New()
		router.DELETE("/generated-reports/:id", setValue(middleware.ResourceKey, report), NewReportHandler(mockService).Delete)

		w := doRequest(router, http.MethodDelete, "/generated-reports/"+report.ID.Hex(), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, deleted)
	})
}

func TestReportHandler_CategoryReport(t *testing.T) {
	businessID := primitive.NewObjectID()

	for category := range CategoryActions {
		t.Run(category, func(t *testing.T) {
			mockService := &mocks.MockReportService{
				CategoryReportFunc: func(ctx context.Context, bid primitive.ObjectID, c string) (*models.CategoryReportResponse, error) {
					assert.Equal(t, category, c)
					return &models.CategoryReportResponse{Category: c, Counts: map[models.RecordKind]int64{}}, nil
				},
			}

			router := gin.New()
			router.GET("/report-views/"+category, setBusinessID(businessID), NewReportHandler(mockService).CategoryReport(category))

			w := doRequest(router, http.MethodGet, "/report-views/"+category, nil)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, category, decodeData(t, w)["category"])
		})
	}
}
