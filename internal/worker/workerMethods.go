package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/akolanti/DocAPI/internal/config"
	jobmodel "github.com/akolanti/DocAPI/internal/domain/jobModel"
	"github.com/akolanti/DocAPI/internal/metrics"
)

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		// Record total time at the end
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, 90*time.Second)
	defer cancel()
	logger.With("trace Id ", job.TraceId)
	logger.Debug("Processing job:", "job Id:", job.Id)

	saveJobState(ctx, job, jobmodel.JobStatusRunning)

	if job.JobType == jobmodel.JobTypeExtract {
		job.CurrentStep = jobmodel.ExtractProcessing
		job = _pipelineService.ExtractDocument(ctx, job)

	} else {
		job.CurrentStep = jobmodel.SummarizeInit
		job = _pipelineService.SummarizeDocument(ctx, job)
	}

	job.EndTime = time.Now()
	if job.Status == jobmodel.JobStatusError {
		saveJobState(ctx, job, jobmodel.JobStatusError)
		metrics.IncrementJobsProcessed(string(job.JobType), string(jobmodel.JobStatusError))
		return
	}
	saveJobState(ctx, job, jobmodel.JobStatusComplete)
	metrics.IncrementJobsProcessed(string(job.JobType), string(jobmodel.JobStatusComplete))
}

func removeWorker(reason string) {

	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()

}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update status in Redis", "err", err)
	}
}
