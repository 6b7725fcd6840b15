package gemini

import (
	"context"
	"errors"
	"sync"

	"github.com/akolanti/DocAPI/internal/config"
	"github.com/akolanti/DocAPI/internal/customHttpClient"
	"github.com/akolanti/DocAPI/internal/summarize"
	"github.com/akolanti/DocAPI/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

// GetGeminiClient returns the singleton Gemini provider, or nil when no API
// key was supplied - callers treat nil as a missing credential and never
// reach the network.
func GetGeminiClient(ctx context.Context, apikey string, modelName string) summarize.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, apikey, modelName)
	})

	if geminiClient == nil {
		return nil
	}
	return &llmClient{client: geminiClient.client, modelName: geminiClient.modelName}
}

func newGeminiClient(ctx context.Context, apikey string, modelName string) {
	if apikey == "" {
		logger.Error("No Gemini API key provided. Set the " + config.GeminiAPIKeyEnv + " environment variable")
		return
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apikey,
		HTTPClient: customHttpClient.Client(),
	})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
	}
	if c != nil {
		geminiClient = &llmClient{client: c, modelName: modelName}
		logger.Info("Gemini client created", "model", modelName)
		go closeClient(ctx, geminiClient)
	}
}

func (c *llmClient) Generate(ctx context.Context, prompt string) (any, error) {
	contentConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(config.ModelTemperature),
		MaxOutputTokens: config.ModelMaxOutputTokens,
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(prompt),
		contentConfig,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.New("empty response from Gemini")
	}
	return result.Text(), nil
}

func closeClient(ctx context.Context, llm *llmClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	llm.client = nil
	llm.modelName = ""
}
