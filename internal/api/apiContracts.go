package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

// DocumentResponse carries the outcome of an extract job: the text pulled out
// of the upload, verbatim.
type DocumentResponse struct {
	DocumentId    string `json:"document_id"`
	FileName      string `json:"file_name"`
	ExtractedText string `json:"extracted_text"`
}

// SummaryResponse carries the outcome of a summarize job. Warning is set when
// the model returned an empty reply without an error.
type SummaryResponse struct {
	DocumentId string `json:"document_id,omitempty"`
	Summary    string `json:"summary"`
	Warning    string `json:"warning,omitempty"`
}

type Result struct {
	Status   string            `json:"status"`
	Document *DocumentResponse `json:"document,omitempty"`
	Summary  *SummaryResponse  `json:"summary,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

// requests---------------------

// SummarizeRequest takes either inline text or the id of a previously
// extracted document. Exactly one must be set.
type SummarizeRequest struct {
	Text       string `json:"text,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
}

type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}
