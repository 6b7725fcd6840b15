package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/akolanti/DocAPI/internal/api"
	"github.com/akolanti/DocAPI/internal/config"
	"github.com/akolanti/DocAPI/internal/domain/commonModels"
	"github.com/akolanti/DocAPI/internal/domain/jobModel"
	"github.com/akolanti/DocAPI/internal/job"
	"github.com/akolanti/DocAPI/pkg/logger_i"
)

// --- Mocks ---

type mockJobStore struct{}

func (m *mockJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	if jobId == "known-job" {
		return jobModel.Job{Id: jobId, Status: jobModel.JobStatusComplete}, true
	}
	return jobModel.Job{}, false
}

func (m *mockJobStore) SaveJob(ctx context.Context, j jobModel.Job) error { return nil }

func (m *mockJobStore) DeleteJob(ctx context.Context, jobID string) {}

type mockDocumentStore struct{}

func (m *mockDocumentStore) GetDocument(ctx context.Context, id string) (commonModels.Document, bool) {
	if id == "known-doc" {
		return commonModels.Document{Id: id, Text: "stored text"}, true
	}
	return commonModels.Document{}, false
}

func (m *mockDocumentStore) SaveDocument(ctx context.Context, doc commonModels.Document) error {
	return nil
}

func (m *mockDocumentStore) DeleteDocument(ctx context.Context, id string) {}

// InitJobHandler is a once-guarded singleton, so every test shares one
// service instance.
var (
	testService   *job.Service
	testSetupOnce sync.Once
)

func setupHandlers(t *testing.T) *job.Service {
	t.Helper()
	testSetupOnce.Do(func() {
		logger_i.Init()
		testService = job.InitJobService(job.ServiceConfig{
			JobChannel:        make(chan jobModel.Job, 32),
			DispatcherChannel: make(chan bool, 32),
			JobStore:          &mockJobStore{},
			DocumentStore:     &mockDocumentStore{},
		})
		InitJobHandler(testService)
	})
	return testService
}

func tracedRequest(method, target string, body *bytes.Buffer) *http.Request {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), config.TRACE_ID_KEY, "test-trace")
	return req.WithContext(ctx)
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		t.Fatalf("Failed building multipart body: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed writing multipart content: %v", err)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

// --- Unit Tests ---

func TestValidateSummarizeRequest(t *testing.T) {
	setupHandlers(t)

	tests := []struct {
		name    string
		request api.SummarizeRequest
		valid   bool
	}{
		{"inline text only", api.SummarizeRequest{Text: "some text"}, true},
		{"known document id", api.SummarizeRequest{DocumentID: "known-doc"}, true},
		{"unknown document id", api.SummarizeRequest{DocumentID: "ghost"}, false},
		{"both set", api.SummarizeRequest{Text: "some text", DocumentID: "known-doc"}, false},
		{"neither set", api.SummarizeRequest{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateSummarizeRequest(tt.request); got != tt.valid {
				t.Errorf("ValidateSummarizeRequest(%+v) = %v; want %v", tt.request, got, tt.valid)
			}
		})
	}
}

func TestPostDocumentHandler_RejectsUnsupportedExtension(t *testing.T) {
	setupHandlers(t)

	body, contentType := multipartUpload(t, "script.exe", []byte("MZ"))
	req := tracedRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	PostDocumentHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for .exe upload, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unsupported file format") {
		t.Errorf("Rejection must name the problem, got %s", rec.Body.String())
	}
}

func TestPostDocumentHandler_RejectsOversizeUpload(t *testing.T) {
	setupHandlers(t)

	oversize := make([]byte, config.MaxUploadSize+1024)
	body, contentType := multipartUpload(t, "big.pdf", oversize)
	req := tracedRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	PostDocumentHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for oversize upload, got %d", rec.Code)
	}
}

func TestPostDocumentHandler_AcceptsWhitelistedUpload(t *testing.T) {
	service := setupHandlers(t)
	t.Cleanup(func() { os.RemoveAll("temporary_data") })

	body, contentType := multipartUpload(t, "scan.png", []byte{0x89, 0x50, 0x4e, 0x47})
	req := tracedRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	PostDocumentHandler(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp api.InitJobResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response body: %v", err)
	}
	if resp.Id == "" || !strings.Contains(resp.StatusURL, resp.Id) {
		t.Errorf("Response must carry a job id and its status URL: %+v", resp)
	}

	select {
	case queued := <-service.JobChannel:
		if queued.JobType != jobModel.JobTypeExtract {
			t.Errorf("Queued job type = %v; want Extract", queued.JobType)
		}
		if queued.JobPayload.UploadFileName != "scan.png" {
			t.Errorf("Queued file name = %q", queued.JobPayload.UploadFileName)
		}
		os.Remove(queued.JobPayload.UploadPath)
	default:
		t.Error("Upload should have queued an extraction job")
	}
}

func TestPostSummarizeHandler(t *testing.T) {
	service := setupHandlers(t)

	t.Run("rejects empty request", func(t *testing.T) {
		body := bytes.NewBufferString(`{}`)
		req := tracedRequest(http.MethodPost, "/summarize", body)
		rec := httptest.NewRecorder()

		PostSummarizeHandler(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("queues inline text", func(t *testing.T) {
		body := bytes.NewBufferString(`{"text":"summarize this"}`)
		req := tracedRequest(http.MethodPost, "/summarize", body)
		rec := httptest.NewRecorder()

		PostSummarizeHandler(rec, req)

		if rec.Code != http.StatusAccepted {
			t.Fatalf("Expected 202, got %d: %s", rec.Code, rec.Body.String())
		}

		select {
		case queued := <-service.JobChannel:
			if queued.JobType != jobModel.JobTypeSummarize {
				t.Errorf("Queued job type = %v; want Summarize", queued.JobType)
			}
			if queued.JobPayload.Text != "summarize this" {
				t.Errorf("Queued text = %q", queued.JobPayload.Text)
			}
		default:
			t.Error("Request should have queued a summarization job")
		}
	})
}

func TestGetStatusHandler_NotFound(t *testing.T) {
	setupHandlers(t)

	req := tracedRequest(http.MethodGet, "/status/ghost-id", nil)
	rec := httptest.NewRecorder()

	GetStatusHandler(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown job, got %d", rec.Code)
	}
}
