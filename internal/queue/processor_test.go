package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"bizsuite/internal/models"
	"bizsuite/internal/reporting"
	reportingmocks "bizsuite/internal/reporting/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

// MockUpdater implements ReportUpdater for testing.
type MockUpdater struct {
	mu          sync.Mutex
	fileKeys    map[string]string
	statuses    map[string]models.ReportStatus
	readyErrors map[string]error
}

func NewMockUpdater() *MockUpdater {
	return &MockUpdater{
		fileKeys:    make(map[string]string),
		statuses:    make(map[string]models.ReportStatus),
		readyErrors: make(map[string]error),
	}
}

func (m *MockUpdater) MarkReady(_ context.Context, id primitive.ObjectID, fileKey string, _ map[models.RecordKind]int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := id.Hex()
	if err, ok := m.readyErrors[key]; ok {
		return err
	}
	m.fileKeys[key] = fileKey
	m.statuses[key] = models.ReportReady
	return nil
}

func (m *MockUpdater) MarkFailed(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[id.Hex()] = models.ReportFailed
	return nil
}

func (m *MockUpdater) GetStatus(id primitive.ObjectID) (models.ReportStatus, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status, ok := m.statuses[id.Hex()]
	return status, ok
}

func (m *MockUpdater) GetFileKey(id primitive.ObjectID) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.fileKeys[id.Hex()]
	return key, ok
}

func TestNewProcessor(t *testing.T) {
	ctrl := gomock.NewController(t)

	queue := NewMemoryQueue(10)
	generator := reportingmocks.NewMockGenerator(ctrl)
	updater := NewMockUpdater()

	processor := NewProcessor(queue, generator, updater, 2)

	assert.NotNil(t, processor)
	assert.Equal(t, queue, processor.queue)
	assert.Equal(t, generator, processor.generator)
	assert.Equal(t, updater, processor.updater)
	assert.Equal(t, 2, processor.workerCount)
}

func TestProcessor_StartStop(t *testing.T) {
	t.Run("starts and stops cleanly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		processor := NewProcessor(NewMemoryQueue(10), reportingmocks.NewMockGenerator(ctrl), NewMockUpdater(), 3)

		processor.Start(context.Background())
		time.Sleep(50 * time.Millisecond)

		done := make(chan struct{})
		go func() {
			processor.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Stop() timed out")
		}
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		processor := NewProcessor(NewMemoryQueue(10), reportingmocks.NewMockGenerator(ctrl), NewMockUpdater(), 1)

		processor.Start(context.Background())

		processor.Stop()
		processor.Stop()
	})
}

func TestProcessor_ProcessJob(t *testing.T) {
	t.Run("marks report ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queue := NewMemoryQueue(10)
		generator := reportingmocks.NewMockGenerator(ctrl)
		updater := NewMockUpdater()
		processor := NewProcessor(queue, generator, updater, 1)

		job := ReportJob{ReportID: primitive.NewObjectID(), BusinessID: primitive.NewObjectID(), Category: models.CategorySales}
		generator.EXPECT().
			Generate(gomock.Any(), job.ReportID, job.BusinessID, models.CategorySales).
			Return(&reporting.Result{FileKey: "reports/a/b.json"}, nil)

		_ = queue.Enqueue(job)

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)
		time.Sleep(200 * time.Millisecond)
		cancel()
		processor.Stop()

		status, ok := updater.GetStatus(job.ReportID)
		require.True(t, ok)
		assert.Equal(t, models.ReportReady, status)
		key, _ := updater.GetFileKey(job.ReportID)
		assert.Equal(t, "reports/a/b.json", key)
	})

	t.Run("retries a failed generation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queue := NewMemoryQueue(10)
		generator := reportingmocks.NewMockGenerator(ctrl)
		updater := NewMockUpdater()
		processor := NewProcessor(queue, generator, updater, 1)
		processor.retryDelay = 10 * time.Millisecond

		job := ReportJob{ReportID: primitive.NewObjectID(), BusinessID: primitive.NewObjectID(), Category: models.CategoryHR}
		gomock.InOrder(
			generator.EXPECT().Generate(gomock.Any(), job.ReportID, job.BusinessID, models.CategoryHR).Return(nil, assert.AnError),
			generator.EXPECT().Generate(gomock.Any(), job.ReportID, job.BusinessID, models.CategoryHR).Return(&reporting.Result{FileKey: "k"}, nil),
		)

		_ = queue.Enqueue(job)

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)
		time.Sleep(300 * time.Millisecond)
		cancel()
		processor.Stop()

		status, ok := updater.GetStatus(job.ReportID)
		require.True(t, ok)
		assert.Equal(t, models.ReportReady, status)
	})

	t.Run("marks as failed after max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queue := NewMemoryQueue(10)
		generator := reportingmocks.NewMockGenerator(ctrl)
		updater := NewMockUpdater()
		processor := NewProcessor(queue, generator, updater, 1)

		job := ReportJob{ReportID: primitive.NewObjectID(), BusinessID: primitive.NewObjectID(), Category: models.CategorySales, RetryCount: MaxRetries - 1}
		generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_ = queue.Enqueue(job)

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)
		time.Sleep(200 * time.Millisecond)
		cancel()
		processor.Stop()

		status, ok := updater.GetStatus(job.ReportID)
		require.True(t, ok)
		assert.Equal(t, models.ReportFailed, status)
	})

	t.Run("store failure after generation counts as a failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queue := NewMemoryQueue(10)
		generator := reportingmocks.NewMockGenerator(ctrl)
		updater := NewMockUpdater()
		processor := NewProcessor(queue, generator, updater, 1)

		job := ReportJob{ReportID: primitive.NewObjectID(), BusinessID: primitive.NewObjectID(), Category: models.CategorySales, RetryCount: MaxRetries - 1}
		generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&reporting.Result{FileKey: "k"}, nil)
		updater.readyErrors[job.ReportID.Hex()] = assert.AnError

		_ = queue.Enqueue(job)

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)
		time.Sleep(200 * time.Millisecond)
		cancel()
		processor.Stop()

		status, ok := updater.GetStatus(job.ReportID)
		require.True(t, ok)
		assert.Equal(t, models.ReportFailed, status)
	})

	t.Run("pending retry is failed on shutdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queue := NewMemoryQueue(10)
		generator := reportingmocks.NewMockGenerator(ctrl)
		updater := NewMockUpdater()
		processor := NewProcessor(queue, generator, updater, 1)
		processor.retryDelay = time.Hour

		job := ReportJob{ReportID: primitive.NewObjectID(), BusinessID: primitive.NewObjectID(), Category: models.CategorySales}
		generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_ = queue.Enqueue(job)

		ctx, cancel := context.WithCancel(context.Background())
		processor.Start(ctx)
		time.Sleep(100 * time.Millisecond)
		cancel()
		processor.Stop()

		assert.Eventually(t, func() bool {
			status, ok := updater.GetStatus(job.ReportID)
			return ok && status == models.ReportFailed
		}, time.Second, 10*time.Millisecond)
	})
}

func TestProcessor_Backoff(t *testing.T) {
	delays := []time.Duration{
		RetryDelay * time.Duration(1<<0),
		RetryDelay * time.Duration(1<<1),
	}

	assert.Equal(t, 5*time.Second, delays[0])
	assert.Equal(t, 10*time.Second, delays[1])
}
