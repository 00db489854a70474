package repository

import (
	"context"
	"testing"

	"bizsuite/internal/database"
	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGeneratedReportRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewGeneratedReportRepository(tdb.Database)
	ctx := context.Background()
	tdb.ClearCollection(t, database.GeneratedReportsCollection)

	businessID := primitive.NewObjectID()
	report := &models.GeneratedReport{BusinessID: businessID, Category: models.CategorySales, RequestedBy: primitive.NewObjectID()}

	t.Run("creates pending report", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, report))

		assert.False(t, report.ID.IsZero())
		assert.Equal(t, models.ReportPending, report.Status)
	})

	t.Run("marks ready", func(t *testing.T) {
		summary := map[models.RecordKind]int64{models.KindLead: 3}
		require.NoError(t, repo.MarkReady(ctx, report.ID, "reports/x.json", summary))

		found, err := repo.FindByID(ctx, report.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReportReady, found.Status)
		assert.Equal(t, "reports/x.json", found.FileKey)
		assert.Equal(t, int64(3), found.Summary[models.KindLead])
		assert.NotNil(t, found.CompletedAt)
	})

	t.Run("marks failed", func(t *testing.T) {
		failed := &models.GeneratedReport{BusinessID: businessID, Category: models.CategoryHR}
		require.NoError(t, repo.Create(ctx, failed))
		require.NoError(t, repo.MarkFailed(ctx, failed.ID))

		found, err := repo.FindByID(ctx, failed.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReportFailed, found.Status)
	})

	t.Run("lists by business", func(t *testing.T) {
		reports, total, err := repo.FindByBusinessID(ctx, businessID, []string{models.CategorySales, models.CategoryHR}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, reports, 2)
	})

	t.Run("lists only given categories", func(t *testing.T) {
		reports, total, err := repo.FindByBusinessID(ctx, businessID, []string{models.CategorySales}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, reports, 1)
		assert.Equal(t, models.CategorySales, reports[0].Category)
	})

	t.Run("no categories lists nothing", func(t *testing.T) {
		reports, total, err := repo.FindByBusinessID(ctx, businessID, nil, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, reports)
	})

	t.Run("status change on missing report", func(t *testing.T) {
		assert.Equal(t, apperrors.ErrReportNotFound, repo.MarkFailed(ctx, primitive.NewObjectID()))
	})

	t.Run("deletes report", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, report.ID))

		_, err := repo.FindByID(ctx, report.ID)
		assert.Equal(t, apperrors.ErrReportNotFound, err)
	})
}
