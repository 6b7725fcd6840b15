package jobModel

import (
	"context"
	"time"
)

type JobStatus string
type InternalStatus string

type JobType string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	ExtractInit       InternalStatus = "ExtractInit"
	ExtractProcessing InternalStatus = "ExtractProcessing"
	OCRCall           InternalStatus = "OCR"
	SummarizeInit     InternalStatus = "SummarizeInit"
	LLMCall           InternalStatus = "LLM"
	RedisCall         InternalStatus = "Redis"
	Error             InternalStatus = "Error"

	Complete InternalStatus = "Complete"

	JobTypeExtract   JobType = "Extract"
	JobTypeSummarize JobType = "Summarize"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobType     JobType        `json:"job_type"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	//extract jobs
	UploadFileName string `json:"upload_file_name,omitempty"`
	UploadPath     string `json:"upload_path,omitempty"`
	ExtractedText  string `json:"extracted_text,omitempty"`

	//summarize jobs - either inline text or a reference to an extracted document
	DocumentId string `json:"document_id,omitempty"`
	Text       string `json:"text,omitempty"`
	Summary    string `json:"summary,omitempty"`

	//set when the model returned an empty non-error reply
	Warning string `json:"warning,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
