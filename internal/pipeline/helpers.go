package pipeline

import (
	"context"
	"net/http"
	"time"

	"github.com/akolanti/DocAPI/internal/domain/jobModel"
	"github.com/akolanti/DocAPI/internal/metrics"
	"github.com/akolanti/DocAPI/pkg/logger_i"
)

func returnComplete(job jobModel.Job) jobModel.Job {
	job.CurrentStep = jobModel.Complete
	return job
}

func logOutput(job jobModel.Job, status jobModel.InternalStatus, log *logger_i.Logger) jobModel.Job {
	job.CurrentStep = status
	log.Debug("Pipeline step", "Current Status", job.CurrentStep)
	return job
}

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

func (s *service) jobErrorWithCode(job jobModel.Job, code int, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "code", code)

	job.Error = jobModel.JobError{
		Code:    code,
		Message: message,
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

func (s *service) executeExtractionStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, data []byte) (string, error) {
	*job = logOutput(*job, jobModel.OCRCall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("text_extraction", time.Since(start)) }()

	return s.extractor.Extract(ctx, data, job.JobPayload.UploadFileName)
}

func (s *service) executeSummarizeStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, text string) (string, error) {
	*job = logOutput(*job, jobModel.LLMCall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_summarization", time.Since(start)) }()

	return s.summarizer.Summarize(ctx, text)
}
