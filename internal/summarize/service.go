package summarize

import (
	"context"
	"fmt"

	"github.com/akolanti/DocAPI/internal/config"
	"github.com/akolanti/DocAPI/pkg/logger_i"
)

// Service wraps a single hosted-model provider behind the fixed summary
// prompt. Every call re-invokes the model; results are never cached.
type Service struct {
	provider Provider
	logger   *logger_i.Logger
}

// NewService constructor. A nil provider is allowed and means no credential
// was available at startup: Summarize then fails fast without a network call.
func NewService(provider Provider) *Service {
	return &Service{
		provider: provider,
		logger:   logger_i.NewLogger("Summarizer"),
	}
}

// Summarize asks the model for a concise summary of the extracted text.
func (s *Service) Summarize(ctx context.Context, text string) (string, error) {
	if s.provider == nil {
		return "", ErrMissingCredential
	}

	prompt := fmt.Sprintf(config.SummaryPromptTemplate, text)
	reply, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("model invocation: %w", err)
	}

	summary := NormalizeReply(reply)
	s.logger.Debug("Summarize", "summary length", len(summary))
	return summary, nil
}
