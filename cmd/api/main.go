// @title           Document Analyzer API
// @version         1.0
// @description     This API handles asynchronous document text extraction and summarization
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/DocAPI/internal/config"
	"github.com/akolanti/DocAPI/internal/data/store"
	jobmodel "github.com/akolanti/DocAPI/internal/domain/jobModel"
	"github.com/akolanti/DocAPI/internal/extract"
	"github.com/akolanti/DocAPI/internal/extract/ocr"
	"github.com/akolanti/DocAPI/internal/extract/raster"
	"github.com/akolanti/DocAPI/internal/handlers"
	"github.com/akolanti/DocAPI/internal/job"
	"github.com/akolanti/DocAPI/internal/pipeline"
	"github.com/akolanti/DocAPI/internal/server"
	"github.com/akolanti/DocAPI/internal/summarize"
	"github.com/akolanti/DocAPI/internal/summarize/gemini"
	summarizeopenai "github.com/akolanti/DocAPI/internal/summarize/openai"
	"github.com/akolanti/DocAPI/internal/worker"
	"github.com/akolanti/DocAPI/pkg/logger_i"
)

var (
	listenAddr        string
	llmProviderName   string
	apiKey            string
	ocrLanguage       string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config - only this layer touches flags and the environment
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.StringVar(&llmProviderName, "llm-provider", "gemini", "hosted model provider: gemini or openai")
	flag.StringVar(&apiKey, "api-key", "", "hosted model API key (falls back to the provider's env var)")
	flag.StringVar(&ocrLanguage, "ocr-lang", config.OCRDefaultLanguage, "language hint for the recognition engine")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and stores
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting job service")

	//nil checks happen on the concrete pointers, before the interface fields are set
	jobStore := store.GetRedisJobStore(serviceContext)
	documentStore := store.GetRedisDocumentStore(serviceContext)
	if jobStore == nil || documentStore == nil {
		logger.Error("Redis stores are offline")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
		serviceConfig.DocumentStore = store.InitInMemoryDocumentStore()
	} else {
		serviceConfig.JobStore = jobStore
		serviceConfig.DocumentStore = documentStore
	}
	service := job.InitJobService(serviceConfig)

	extractor := extract.NewExtractor(extract.Config{
		Engine:     ocr.NewTesseractEngine(),
		Rasterizer: raster.NewPDFCPURasterizer(),
		Languages:  []string{ocrLanguage},
	})

	llmProvider := buildProvider(serviceContext)
	if llmProvider == nil {
		logger.Warn("No hosted model credential available - summarize requests will fail fast")
	}
	summarizer := summarize.NewService(llmProvider)

	pipelineService := pipeline.NewService(extractor, summarizer, serviceConfig.DocumentStore)

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, pipelineService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

func buildProvider(ctx context.Context) summarize.Provider {
	switch llmProviderName {
	case "openai":
		key := apiKey
		if key == "" {
			key = config.GetEnv(config.OpenAIAPIKeyEnv, "")
		}
		return summarizeopenai.GetOpenAIClient(key, config.OpenAIModelName)
	default:
		key := apiKey
		if key == "" {
			key = config.GetEnv(config.GeminiAPIKeyEnv, "")
		}
		return gemini.GetGeminiClient(ctx, key, config.GeminiModelName)
	}
}
