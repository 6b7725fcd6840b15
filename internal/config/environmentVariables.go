package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = false //if redis init fails, it falls back to an internal in-memory store
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	//auth - the bypass is only for local runs without a reverse proxy in front
	NoAuthBypass = true
	AuthToken    = ""

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute
	//IdleWorkerTimeout = 1 * time.Second //fo tests

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//upload constraints - enforced in the handler before any extraction runs
	MaxUploadSize int64 = 10 << 20 //10 MiB

	//llm
	GeminiModelName = "gemini-2.5-flash"
	OpenAIModelName = "gpt-4o-mini"

	ModelTemperature     float32 = 0.2
	ModelMaxOutputTokens int32   = 1024

	//the template frames the text as OCR output so the model tolerates recognition noise
	SummaryPromptTemplate = "You are a helpful assistant. Read the following document text extracted with OCR " +
		"and provide a concise summary highlighting the main points. Be clear and coherent.\n\n" +
		"Document text extracted with OCR :\n%s\n\nSummary:"

	//credential env vars - only cmd/api reads these, never business logic
	GeminiAPIKeyEnv = "GOOGLE_API_KEY"
	OpenAIAPIKeyEnv = "OPENAI_API_KEY"

	//ocr
	OCRDefaultLanguage = "eng"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//per-job step budgets
	ExtractionTimeout = 60 * time.Second
	SummarizeTimeout  = 30 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisJobStore      = 0
	RedisDocumentStore = 1

	//redis timeouts
	RedisJobStoreTTL      = 24 * time.Hour
	RedisDocumentStoreTTL = 24 * time.Hour
)

// AcceptedExtensions is the upload whitelist checked before the pipeline is entered.
var AcceptedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// GetEnv returns the env value or the fallback when unset.
func GetEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
