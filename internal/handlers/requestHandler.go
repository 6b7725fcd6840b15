package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akolanti/DocAPI/internal/adapter"
	"github.com/akolanti/DocAPI/internal/adapter/utils"
	"github.com/akolanti/DocAPI/internal/api"
	"github.com/akolanti/DocAPI/internal/config"
	"github.com/akolanti/DocAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

type newJobData struct {
	id         string
	traceId    string
	isExtract  bool
	fileName   string
	filePath   string
	text       string
	documentId string
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// PostDocumentHandler handles the uploading of a document for text extraction.
// @Summary      Upload a document for text extraction
// @Description  Receives a PDF, DOCX, JPG, JPEG or PNG via multipart/form-data (10 MiB max), saves it to a temporary directory, and queues an extraction job.
// @Tags         Extraction
// @Accept       multipart/form-data
// @Produce      json
// @Param        document  formData  file  true  "The document to extract text from"
// @Success      202  {object}  api.InitJobResponse "Accepted - returns job id"
// @Failure      400  {object}  api.JobResponse "Bad Request - unsupported format or file too large"
// @Failure      500  {object}  api.JobResponse "Internal Server Error - Storage or Write Error"
// @Router       /documents [post]
func PostDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		targetDir, errString := getTargetDirectory()

		if errString != "" {
			logRH.Error("Couldn't get target directory :", "err", errString)
			WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
			return
		}

		//the limit is enforced here, before the extraction pipeline is entered
		r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize+512)
		err := r.ParseMultipartForm(config.MaxUploadSize)
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, "", "File exceeds maximum allowed size of 10 MiB")
			return
		}

		fileReader, fileMetadata, err := r.FormFile("document")
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, "", "Could not retrieve file")
			return
		}
		defer fileReader.Close()

		if fileMetadata.Size > config.MaxUploadSize {
			WriteErrorResponse(w, http.StatusBadRequest, fileMetadata.Filename, "File exceeds maximum allowed size of 10 MiB")
			return
		}

		ext := strings.ToLower(filepath.Ext(fileMetadata.Filename))
		if !config.AcceptedExtensions[ext] {
			WriteErrorResponse(w, http.StatusBadRequest, fileMetadata.Filename, "Unsupported file format: "+ext)
			return
		}

		filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileMetadata.Filename)
		tempFilePath := filepath.Join(targetDir, filename)
		destinationFileWriter, err := os.Create(tempFilePath)
		if err != nil {
			WriteErrorResponse(w, http.StatusInternalServerError, fileMetadata.Filename, "Storage error")
			return
		}
		defer destinationFileWriter.Close()

		if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
			WriteErrorResponse(w, http.StatusInternalServerError, fileMetadata.Filename, "Write error")
			return
		}

		queueJob(r, w, newJobData{
			isExtract: true,
			fileName:  fileMetadata.Filename,
			filePath:  tempFilePath,
		})
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// PostSummarizeHandler godoc
// @Summary      Request a summary
// @Description  Accepts inline text or the id of a previously extracted document, queues a summarization job, and returns a job ID to track status.
// @Tags         Summarization
// @Accept       json
// @Produce      json
// @Param        request  body      api.SummarizeRequest  true  "Inline text or document id"
// @Success      202      {object}  api.InitJobResponse   "Job successfully created"
// @Failure      400      {object}  api.JobResponse       "Invalid request data"
// @Router       /summarize [post]
func PostSummarizeHandler(w http.ResponseWriter, request *http.Request) {

	if validateContext(request.Context()) {

		var requestData api.SummarizeRequest
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logRH.Error("Couldn't close the summarize handler reader :", err)
			}
		}(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || !ValidateSummarizeRequest(requestData) {
			logRH.Warn("Bad Summarize Request: ", "error:", err, "request data:", requestData)
			WriteErrorResponse(w, http.StatusBadRequest, requestData.DocumentID, "Bad Request")
			return
		}

		queueJob(request, w, newJobData{
			text:       requestData.Text,
			documentId: requestData.DocumentID,
		})
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a specific job using its ID, including extracted text or summary once complete.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID "
// @Success      200  {object}  api.JobResponse   "Successful retrieval of job status"
// @Failure      404  {object}  api.JobResponse   "Job not found (returns Error object within JobResponse)"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "id")
		result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

		logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
	}
}
