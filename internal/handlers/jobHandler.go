package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akolanti/DocAPI/internal/api"
	"github.com/akolanti/DocAPI/internal/config"
	"github.com/akolanti/DocAPI/internal/domain/jobModel"
	"github.com/akolanti/DocAPI/internal/job"
	"github.com/akolanti/DocAPI/internal/metrics"
	"github.com/akolanti/DocAPI/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service *job.Service
}

func InitJobHandler(jobService *job.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})

}

func CreateNewJob(newJob newJobData) {
	logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	logJH.Info("To create new job")
	handlerInstance.pushToJobChannel(newJob)
}

func GetJobStatus(id string, traceId string) (result jobModel.Job, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

// ValidateSummarizeRequest requires exactly one of inline text or a document
// reference, and only accepts document ids the store has seen.
func ValidateSummarizeRequest(req api.SummarizeRequest) bool {
	if handlerInstance == nil {
		return false
	}
	if req.Text == "" && req.DocumentID == "" {
		return false
	}
	if req.Text != "" && req.DocumentID != "" {
		return false
	}
	if req.DocumentID != "" {
		_, found := handlerInstance.service.DocumentStore.GetDocument(context.Background(), req.DocumentID)
		return found
	}
	return true
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{}
	_job.Id = newJob.id
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = jobModel.JobStatusQueued

	if newJob.isExtract {
		_job.CurrentStep = jobModel.ExtractInit
		_job.JobType = jobModel.JobTypeExtract
		_job.JobPayload.UploadFileName = newJob.fileName
		_job.JobPayload.UploadPath = newJob.filePath

	} else {
		_job.JobType = jobModel.JobTypeSummarize
		_job.JobPayload.Text = newJob.text
		_job.JobPayload.DocumentId = newJob.documentId
		_job.CurrentStep = jobModel.SummarizeInit
	}

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //this is a blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new job")

	//a new worker is signalled every N requests, and always for an extraction
	//job - OCR on a scanned document can hold a worker for a while, so keeping
	//one extra around keeps summarize jobs moving
	accurateCount := atomic.AddInt64(&h.service.RequestCount, 1) //after sending a request increment counter
	if accurateCount%config.RequestsPerNewWorkerCount == 0 || _job.JobType == jobModel.JobTypeExtract {
		metrics.StartDispatcherSignalCount() //metrics
		logJH.Debug("Worker count ", accurateCount)
		h.service.DispatcherChannel <- true
	}
}
