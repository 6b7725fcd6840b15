package adapter

import (
	"fmt"
	"time"

	"github.com/akolanti/DocAPI/internal/api"
	"github.com/akolanti/DocAPI/internal/domain/jobModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id), //pass "status/job.Id"
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:   string(job.Status),
		Document: ToDocumentResponse(job),
		Summary:  ToSummaryResponse(job),
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToDocumentResponse(job jobModel.Job) *api.DocumentResponse {
	if job.JobType != jobModel.JobTypeExtract || job.JobPayload.ExtractedText == "" {
		return nil
	}

	return &api.DocumentResponse{
		DocumentId:    job.JobPayload.DocumentId,
		FileName:      job.JobPayload.UploadFileName,
		ExtractedText: job.JobPayload.ExtractedText,
	}
}

func ToSummaryResponse(job jobModel.Job) *api.SummaryResponse {
	if job.JobType != jobModel.JobTypeSummarize {
		return nil
	}
	if job.JobPayload.Summary == "" && job.JobPayload.Warning == "" {
		return nil
	}

	return &api.SummaryResponse{
		DocumentId: job.JobPayload.DocumentId,
		Summary:    job.JobPayload.Summary,
		Warning:    job.JobPayload.Warning,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
