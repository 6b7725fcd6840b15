package openai

import (
	"context"
	"errors"
	"sync"

	"github.com/akolanti/DocAPI/internal/config"
	"github.com/akolanti/DocAPI/internal/customHttpClient"
	"github.com/akolanti/DocAPI/internal/summarize"
	"github.com/akolanti/DocAPI/pkg/logger_i"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type llmClient struct {
	client    openaisdk.Client
	modelName string
}

var logger *logger_i.Logger
var openaiClient *llmClient
var once sync.Once

// GetOpenAIClient returns the singleton OpenAI provider, or nil when no API
// key was supplied.
func GetOpenAIClient(apikey string, modelName string) summarize.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		if apikey == "" {
			logger.Error("No OpenAI API key provided. Set the " + config.OpenAIAPIKeyEnv + " environment variable")
			return
		}
		openaiClient = &llmClient{
			client: openaisdk.NewClient(
				option.WithAPIKey(apikey),
				option.WithHTTPClient(customHttpClient.Client()),
			),
			modelName: modelName,
		}
		logger.Info("OpenAI client created", "model", modelName)
	})

	if openaiClient == nil {
		return nil
	}
	return openaiClient
}

func (c *llmClient) Generate(ctx context.Context, prompt string) (any, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.modelName),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
		Temperature:         openaisdk.Float(float64(config.ModelTemperature)),
		MaxCompletionTokens: openaisdk.Int(int64(config.ModelMaxOutputTokens)),
	})
	if err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("empty response from OpenAI")
	}
	return completion.Choices[0].Message.Content, nil
}
