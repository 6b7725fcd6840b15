package pipeline

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/akolanti/DocAPI/internal/config"
	"github.com/akolanti/DocAPI/internal/domain/commonModels"
	"github.com/akolanti/DocAPI/internal/domain/jobModel"
	"github.com/akolanti/DocAPI/internal/extract"
	"github.com/akolanti/DocAPI/internal/summarize"
	"github.com/akolanti/DocAPI/pkg/logger_i"
)

// Service is all the worker sees - it doesn't need to know about the OCR
// engine, the PDF reader or the hosted model behind these two steps.
type Service interface {
	ExtractDocument(ctx context.Context, job jobModel.Job) jobModel.Job
	SummarizeDocument(ctx context.Context, job jobModel.Job) jobModel.Job
}

type service struct {
	extractor     *extract.Extractor
	summarizer    *summarize.Service
	documentStore commonModels.DocumentStore
	logger        *logger_i.Logger
}

// NewService constructor. Dependencies come in from the entry point so tests
// can swap real engines for mocks.
func NewService(ex *extract.Extractor, sum *summarize.Service, docs commonModels.DocumentStore) Service {
	return &service{
		extractor:     ex,
		summarizer:    sum,
		documentStore: docs,
		logger:        logger_i.NewLogger("Pipeline Service :"),
	}
}

// ExtractDocument reads the uploaded file, extracts its text and records the
// document so a later summarize request can reference it by id. The upload
// file is transient and removed whether extraction succeeds or not.
func (s *service) ExtractDocument(ctx context.Context, job jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY).(string), "JobId", job.Id)

	processContext, cancel := context.WithTimeout(ctx, config.ExtractionTimeout)
	defer cancel()

	job.CurrentStep = jobModel.ExtractProcessing

	data, err := os.ReadFile(job.JobPayload.UploadPath)
	defer s.removeUpload(job.JobPayload.UploadPath)
	if err != nil {
		inMethodLogger.Error("Error reading uploaded file", "error", err)
		return s.jobError(job, err, "Could not read uploaded file", false)
	}

	text, err := s.executeExtractionStep(processContext, inMethodLogger, &job, data)
	if err != nil {
		return s.jobError(job, err, "Error extracting text: "+err.Error(), false)
	}

	doc := commonModels.Document{
		Id:          job.Id,
		Name:        job.JobPayload.UploadFileName,
		ExtractedAt: time.Now(),
		ContentType: extract.DocTypeOf(job.JobPayload.UploadFileName),
		Text:        text,
	}
	if err := s.documentStore.SaveDocument(ctx, doc); err != nil {
		inMethodLogger.Error("Failed to save extracted document", "error", err)
	}

	job.JobPayload.ExtractedText = text
	job.JobPayload.DocumentId = doc.Id
	return returnComplete(job)
}

// SummarizeDocument resolves the input text (inline or by document id) and
// asks the hosted model for a summary. An empty non-error reply is a soft
// failure surfaced as a warning, distinct from a hard error.
func (s *service) SummarizeDocument(ctx context.Context, job jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY).(string), "JobId", job.Id)

	processContext, cancel := context.WithTimeout(ctx, config.SummarizeTimeout)
	defer cancel()

	text := job.JobPayload.Text
	if text == "" {
		doc, found := s.documentStore.GetDocument(ctx, job.JobPayload.DocumentId)
		if !found {
			return s.jobErrorWithCode(job, http.StatusNotFound, "Document not found", false)
		}
		text = doc.Text
	}

	summary, err := s.executeSummarizeStep(processContext, inMethodLogger, &job, text)
	if err != nil {
		if summarize.IsMissingCredential(err) {
			return s.jobErrorWithCode(job, http.StatusUnauthorized, "No API key configured for the summarizer", false)
		}
		return s.jobError(job, err, "Error during summarisation: "+err.Error(), true)
	}

	job.JobPayload.Summary = summary
	if summary == "" {
		job.JobPayload.Warning = "No summary was generated. Please check your API key or try with another document."
	}
	return returnComplete(job)
}

func (s *service) removeUpload(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		s.logger.Error("Error removing file", "error", err)
	}
}
