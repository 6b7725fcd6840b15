package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akolanti/DocAPI/internal/config"
	"github.com/akolanti/DocAPI/internal/domain/commonModels"
	"github.com/akolanti/DocAPI/internal/domain/jobModel"
	"github.com/akolanti/DocAPI/internal/job"
	"github.com/akolanti/DocAPI/pkg/logger_i"
)

// MockPipelineService to track if jobs are executed
type MockPipelineService struct {
	ProcessedCount int32
}

func (m *MockPipelineService) ExtractDocument(ctx context.Context, j jobModel.Job) jobModel.Job {
	atomic.AddInt32(&m.ProcessedCount, 1)
	return j
}

func (m *MockPipelineService) SummarizeDocument(ctx context.Context, j jobModel.Job) jobModel.Job {
	atomic.AddInt32(&m.ProcessedCount, 1)
	return j
}

type MockJobStore struct {
	OnSaveJob func(ctx context.Context, job jobModel.Job) error
}

func (m *MockJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	//TODO implement me
	panic("implement me")
}

func (m *MockJobStore) DeleteJob(ctx context.Context, jobID string) {
	//TODO implement me
	panic("implement me")
}

func (m *MockJobStore) SaveJob(ctx context.Context, j jobModel.Job) error {
	if m.OnSaveJob != nil {
		return m.OnSaveJob(ctx, j)
	}
	return nil
}

type MockDocumentStore struct {
	OnGetDocument func(ctx context.Context, id string) (commonModels.Document, bool)
}

func (m *MockDocumentStore) GetDocument(ctx context.Context, id string) (commonModels.Document, bool) {
	if m.OnGetDocument != nil {
		return m.OnGetDocument(ctx, id)
	}
	return commonModels.Document{}, false
}

func (m *MockDocumentStore) SaveDocument(ctx context.Context, doc commonModels.Document) error {
	return nil
}

func (m *MockDocumentStore) DeleteDocument(ctx context.Context, id string) {}

func TestWorkerPool_Flow(t *testing.T) {
	// 1. Setup
	jobSvc := &job.Service{
		JobChannel:        make(chan jobModel.Job, 10),
		DispatcherChannel: make(chan bool, 10),
		JobStore:          &MockJobStore{},
		DocumentStore:     &MockDocumentStore{},
	}
	mockPipeline := &MockPipelineService{}
	stopChan := make(chan bool)
	wg := &sync.WaitGroup{}

	InitServices(jobSvc, mockPipeline)
	InitWorkerPool(stopChan, wg)

	// Reset global state for test
	atomic.StoreInt64(&currentWorkerCount, 0)

	t.Run("Dispatcher creates worker on signal", func(t *testing.T) {
		// Signal dispatcher to create a worker
		jobSvc.DispatcherChannel <- true

		// Give it a millisecond to spawn
		time.Sleep(50 * time.Millisecond)

		count := atomic.LoadInt64(&currentWorkerCount)
		if count < 1 {
			t.Errorf("Expected at least 1 worker, got %d", count)
		}
	})

	t.Run("Worker processes a job", func(t *testing.T) {
		testJob := jobModel.Job{Id: "test-1", JobType: jobModel.JobTypeSummarize}
		jobSvc.JobChannel <- testJob

		// Wait for worker to pick up and process
		time.Sleep(50 * time.Millisecond)

		processed := atomic.LoadInt32(&mockPipeline.ProcessedCount)
		if processed != 1 {
			t.Errorf("Expected 1 job processed, got %d", processed)
		}
	})

	t.Run("Stop signal retires workers", func(t *testing.T) {
		// Send stop signal
		close(stopChan)

		// Wait for workers to exit
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			// Success
		case <-time.After(2 * time.Second):
			t.Error("Workers did not stop within timeout")
		}
	})
}

func TestWorker_IdleTimeout(t *testing.T) {
	// Temporarily override config/globals for test
	atomic.StoreInt64(&currentWorkerCount, 0)
	atomic.StoreInt64(&minWorkerCount, 2) // Must be > 1 based on your logic
	logger = logger_i.NewLogger("TestWorkerPool")
	jobSvc := &job.Service{
		JobChannel: make(chan jobModel.Job),
	}
	InitServices(jobSvc, &MockPipelineService{})

	wg := &sync.WaitGroup{}
	stopChan := make(chan bool)
	workerWaitGroup = wg
	stopWorkerChannel = stopChan

	// Spawn 1 worker manually
	createWorker()
	time.Sleep(config.IdleWorkerTimeout)

	time.Sleep(100 * time.Millisecond)
	count := atomic.LoadInt64(&currentWorkerCount)
	if count != 0 {
		t.Errorf("Assertion Failed: Worker should have timed out and retired, but count is %d", count)
	}
}
