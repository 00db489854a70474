package service

import (
	"context"
	"testing"

	"bizsuite/internal/models"
	repomocks "bizsuite/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestKPIService(t *testing.T) {
	businessID := primitive.NewObjectID()
	config := &models.KPIConfig{BusinessID: businessID}

	t.Run("get config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockKPIConfigRepository(ctrl)
		repo.EXPECT().FindByBusinessID(gomock.Any(), businessID).Return(config, nil)

		got, err := NewKPIService(repo).GetConfig(context.Background(), businessID)

		require.NoError(t, err)
		assert.Equal(t, config, got)
	})

	t.Run("configure settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockKPIConfigRepository(ctrl)
		settings := map[string]interface{}{"period": "daily"}
		repo.EXPECT().Set(gomock.Any(), businessID, bson.M{"settings": settings}).Return(config, nil)

		_, err := NewKPIService(repo).Configure(context.Background(), businessID, settings)

		assert.NoError(t, err)
	})

	t.Run("set targets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockKPIConfigRepository(ctrl)
		targets := map[string]float64{"leads_count": 120}
		repo.EXPECT().Set(gomock.Any(), businessID, bson.M{"targets": targets}).Return(config, nil)

		_, err := NewKPIService(repo).SetTargets(context.Background(), businessID, targets)

		assert.NoError(t, err)
	})

	t.Run("configure alerts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockKPIConfigRepository(ctrl)
		alerts := []models.KPIAlert{{KPICode: "leads_count", Operator: "lt", Threshold: 100}}
		repo.EXPECT().Set(gomock.Any(), businessID, bson.M{"alerts": alerts}).Return(config, nil)

		_, err := NewKPIService(repo).ConfigureAlerts(context.Background(), businessID, alerts)

		assert.NoError(t, err)
	})

	t.Run("create custom kpi", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockKPIConfigRepository(ctrl)
		kpi := models.CustomKPI{Code: "repeat_orders", Name: "Repeat orders"}
		repo.EXPECT().AddCustomKPI(gomock.Any(), businessID, kpi).Return(nil, assert.AnError)

		_, err := NewKPIService(repo).CreateCustomKPI(context.Background(), businessID, kpi)

		assert.ErrorIs(t, err, assert.AnError)
	})
}
