package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizsuite/internal/authz"
	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/middleware"
	"bizsuite/internal/models"
	"bizsuite/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewBusinessHandler(t *testing.T) {
	mockService := &mocks.MockBusinessService{}
	handler := NewBusinessHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestBusinessHandler_CreateBusiness(t *testing.T) {
	userID := primitive.NewObjectID()
	validBody := models.CreateBusinessRequest{Name: "Sardor Textiles", Slug: "sardor-textiles"}

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockBusinessService)
		expectedStatus int
	}{
		{
			name: "creates business",
			body: validBody,
			mockSetup: func(m *mocks.MockBusinessService) {
				m.CreateBusinessFunc = func(ctx context.Context, uid primitive.ObjectID, req *models.CreateBusinessRequest) (*models.Business, error) {
					assert.Equal(t, userID, uid)
					return &models.Business{ID: primitive.NewObjectID(), OwnerID: uid, Name: req.Name, Slug: req.Slug, Plan: models.PlanFree}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid slug",
			body:           models.CreateBusinessRequest{Name: "Sardor Textiles", Slug: "Sardor Textiles"},
			mockSetup:      func(m *mocks.MockBusinessService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "slug taken",
			body: validBody,
			mockSetup: func(m *mocks.MockBusinessService) {
				m.CreateBusinessFunc = func(ctx context.Context, uid primitive.ObjectID, req *models.CreateBusinessRequest) (*models.Business, error) {
					return nil, apperrors.ErrBusinessSlugTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "internal error",
			body: validBody,
			mockSetup: func(m *mocks.MockBusinessService) {
				m.CreateBusinessFunc = func(ctx context.Context, uid primitive.ObjectID, req *models.CreateBusinessRequest) (*models.Business, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBusinessService{}
			tt.mockSetup(mockService)
			handler := NewBusinessHandler(mockService)

			router := gin.New()
			router.POST("/businesses", setUserID(userID.Hex()), handler.CreateBusiness)

			w := doRequest(router, http.MethodPost, "/businesses", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBusinessHandler_ListMyBusinesses(t *testing.T) {
	userID := primitive.NewObjectID()

	mockService := &mocks.MockBusinessService{
		ListMyBusinessesFunc: func(ctx context.Context, uid primitive.ObjectID, page, limit int) (*models.BusinessListResponse, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, limit)
			return &models.BusinessListResponse{
				Items:      []models.Business{{Name: "Sardor Textiles"}},
				Pagination: models.Pagination{Page: 2, Limit: 5, TotalItems: 6, TotalPages: 2},
			}, nil
		},
	}
	handler := NewBusinessHandler(mockService)

	router := gin.New()
	router.GET("/businesses", setUserID(userID.Hex()), handler.ListMyBusinesses)

	w := doRequest(router, http.MethodGet, "/businesses?page=2&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Len(t, data["items"], 1)
}

func TestBusinessHandler_ListAllBusinesses(t *testing.T) {
	mockService := &mocks.MockBusinessService{
		ListAllBusinessesFunc: func(ctx context.Context, page, limit int) (*models.BusinessListResponse, error) {
			return nil, errors.New("database error")
		},
	}
	router := gin.New()
	router.GET("/admin/businesses", NewBusinessHandler(mockService).ListAllBusinesses)

	w := doRequest(router, http.MethodGet, "/admin/businesses", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBusinessHandler_BusinessRoutes(t *testing.T) {
	business := &models.Business{ID: primitive.NewObjectID(), OwnerID: primitive.NewObjectID(), Name: "Sardor Textiles"}

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		withBusiness   bool
		mockSetup      func(*mocks.MockBusinessService)
		route          func(*BusinessHandler) gin.HandlerFunc
		expectedStatus int
	}{
		{
			name:           "get business from context",
			method:         http.MethodGet,
			withBusiness:   true,
			mockSetup:      func(m *mocks.MockBusinessService) {},
			route:          func(h *BusinessHandler) gin.HandlerFunc { return h.GetBusiness },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "get business without gate",
			method:         http.MethodGet,
			withBusiness:   false,
			mockSetup:      func(m *mocks.MockBusinessService) {},
			route:          func(h *BusinessHandler) gin.HandlerFunc { return h.GetBusiness },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:         "update profile",
			method:       http.MethodPut,
			body:         map[string]string{"name": "Sardor Textiles LLC"},
			withBusiness: true,
			mockSetup: func(m *mocks.MockBusinessService) {
				m.UpdateBusinessFunc = func(ctx context.Context, b *models.Business, req *models.UpdateBusinessRequest) (*models.Business, error) {
					assert.Equal(t, business.ID, b.ID)
					updated := *b
					updated.Name = *req.Name
					return &updated, nil
				}
			},
			route:          func(h *BusinessHandler) gin.HandlerFunc { return h.UpdateBusiness },
			expectedStatus: http.StatusOK,
		},
		{
			name:         "delete",
			method:       http.MethodDelete,
			withBusiness: true,
			mockSetup: func(m *mocks.MockBusinessService) {
				m.DeleteBusinessFunc = func(ctx context.Context, id primitive.ObjectID) error {
					assert.Equal(t, business.ID, id)
					return nil
				}
			},
			route:          func(h *BusinessHandler) gin.HandlerFunc { return h.DeleteBusiness },
			expectedStatus: http.StatusNoContent,
		},
		{
			name:         "replace settings",
			method:       http.MethodPut,
			body:         map[string]interface{}{"settings": map[string]interface{}{"currency": "UZS"}},
			withBusiness: true,
			mockSetup: func(m *mocks.MockBusinessService) {
				m.UpdateSettingsFunc = func(ctx context.Context, id primitive.ObjectID, settings map[string]interface{}) (*models.Business, error) {
					assert.Equal(t, "UZS", settings["currency"])
					return business, nil
				}
			},
			route:          func(h *BusinessHandler) gin.HandlerFunc { return h.UpdateSettings },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "settings missing",
			method:         http.MethodPut,
			body:           map[string]interface{}{},
			withBusiness:   true,
			mockSetup:      func(m *mocks.MockBusinessService) {},
			route:          func(h *BusinessHandler) gin.HandlerFunc { return h.UpdateSettings },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:         "replace integrations",
			method:       http.MethodPut,
			body:         map[string]interface{}{"integrations": map[string]string{"telegram": "bot-token"}},
			withBusiness: true,
			mockSetup: func(m *mocks.MockBusinessService) {
				m.UpdateIntegrationsFunc = func(ctx context.Context, id primitive.ObjectID, integrations map[string]string) (*models.Business, error) {
					assert.Equal(t, "bot-token", integrations["telegram"])
					return business, nil
				}
			},
			route:          func(h *BusinessHandler) gin.HandlerFunc { return h.UpdateIntegrations },
			expectedStatus: http.StatusOK,
		},
		{
			name:         "change plan",
			method:       http.MethodPut,
			body:         models.UpdateSubscriptionRequest{Plan: models.PlanPro},
			withBusiness: true,
			mockSetup: func(m *mocks.MockBusinessService) {
				m.UpdateSubscriptionFunc = func(ctx context.Context, id primitive.ObjectID, plan string) (*models.Business, error) {
					assert.Equal(t, models.PlanPro, plan)
					return business, nil
				}
			},
			route:          func(h *BusinessHandler) gin.HandlerFunc { return h.UpdateSubscription },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown plan",
			method:         http.MethodPut,
			body:           models.UpdateSubscriptionRequest{Plan: "enterprise"},
			withBusiness:   true,
			mockSetup:      func(m *mocks.MockBusinessService) {},
			route:          func(h *BusinessHandler) gin.HandlerFunc { return h.UpdateSubscription },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBusinessService{}
			tt.mockSetup(mockService)
			handler := NewBusinessHandler(mockService)

			handlers := []gin.HandlerFunc{}
			if tt.withBusiness {
				handlers = append(handlers, setValue(middleware.BusinessKey, business))
			}
			handlers = append(handlers, tt.route(handler))

			router := gin.New()
			router.Handle(tt.method, "/businesses/:businessId", handlers...)

			w := doRequest(router, tt.method, "/businesses/"+business.ID.Hex(), tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBusinessHandler_SwitchBusiness(t *testing.T) {
	businessID := primitive.NewObjectID()
	actor := authz.NewActor(primitive.NewObjectID(), authz.WithMembership(businessID, authz.RoleFinance))

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockBusinessService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "switches to member business",
			body: models.SwitchBusinessRequest{BusinessID: businessID.Hex()},
			mockSetup: func(m *mocks.MockBusinessService) {
				m.SwitchBusinessFunc = func(ctx context.Context, a *authz.Actor, id primitive.ObjectID) (*models.CurrentBusinessResponse, error) {
					assert.Same(t, actor, a)
					return &models.CurrentBusinessResponse{BusinessID: id.Hex(), Role: string(authz.RoleFinance)}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeData(t, w)
				assert.Equal(t, businessID.Hex(), data["businessId"])
				assert.Equal(t, "finance", data["role"])
			},
		},
		{
			name:           "invalid id",
			body:           models.SwitchBusinessRequest{BusinessID: "nope"},
			mockSetup:      func(m *mocks.MockBusinessService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not a member",
			body: models.SwitchBusinessRequest{BusinessID: primitive.NewObjectID().Hex()},
			mockSetup: func(m *mocks.MockBusinessService) {
				m.SwitchBusinessFunc = func(ctx context.Context, a *authz.Actor, id primitive.ObjectID) (*models.CurrentBusinessResponse, error) {
					return nil, apperrors.ErrNotBusinessMember
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBusinessService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.PUT("/me/business", setActor(actor), NewBusinessHandler(mockService).SwitchBusiness)

			w := doRequest(router, http.MethodPut, "/me/business", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestBusinessHandler_CurrentBusiness(t *testing.T) {
	t.Run("no current business", func(t *testing.T) {
		mockService := &mocks.MockBusinessService{
			CurrentBusinessFunc: func(a *authz.Actor) (*models.CurrentBusinessResponse, error) {
				return nil, apperrors.ErrNoCurrentBusiness
			},
		}
		router := gin.New()
		router.GET("/me/business", setActor(authz.NewActor(primitive.NewObjectID())), NewBusinessHandler(mockService).CurrentBusiness)

		w := doRequest(router, http.MethodGet, "/me/business", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing actor", func(t *testing.T) {
		router := gin.New()
		router.GET("/me/business", NewBusinessHandler(&mocks.MockBusinessService{}).CurrentBusiness)

		w := doRequest(router, http.MethodGet, "/me/business", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
