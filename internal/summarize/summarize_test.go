package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akolanti/DocAPI/internal/config"
)

// --- Mocks ---

type mockProvider struct {
	reply      any
	err        error
	callCount  int
	lastPrompt string
}

func (m *mockProvider) Generate(ctx context.Context, prompt string) (any, error) {
	m.callCount++
	m.lastPrompt = prompt
	return m.reply, m.err
}

type carrierReply struct{ text string }

func (c carrierReply) Content() string { return c.text }

// --- Unit Tests ---

func TestNormalizeReply(t *testing.T) {
	tests := []struct {
		name     string
		reply    any
		expected string
	}{
		{"nil", nil, ""},
		{"plain string", "summary text", "summary text"},
		{"content accessor", carrierReply{text: "from accessor"}, "from accessor"},
		{"mapping with content key", map[string]any{"content": "from map"}, "from map"},
		{"mapping without content key", map[string]any{"other": 1}, "map[other:1]"},
		{"fallback stringification", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeReply(tt.reply); got != tt.expected {
				t.Errorf("NormalizeReply(%v) = %q; want %q", tt.reply, got, tt.expected)
			}
		})
	}
}

func TestSummarize_MissingCredential(t *testing.T) {
	service := NewService(nil)

	_, err := service.Summarize(context.Background(), "document text")
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("Expected ErrMissingCredential, got %v", err)
	}
	if !IsMissingCredential(err) {
		t.Error("IsMissingCredential should match the sentinel")
	}
}

func TestSummarize_PromptCarriesDocumentText(t *testing.T) {
	provider := &mockProvider{reply: "a summary"}
	service := NewService(provider)

	summary, err := service.Summarize(context.Background(), "unique document body")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary != "a summary" {
		t.Errorf("Got %q, want provider reply", summary)
	}
	if provider.callCount != 1 {
		t.Errorf("Provider called %d times, want 1", provider.callCount)
	}
	if !strings.Contains(provider.lastPrompt, "unique document body") {
		t.Errorf("Prompt must carry the document text, got %q", provider.lastPrompt)
	}
	if !strings.HasPrefix(provider.lastPrompt, strings.SplitN(config.SummaryPromptTemplate, "%s", 2)[0]) {
		t.Error("Prompt must start with the fixed instruction preamble")
	}
}

func TestSummarize_ReplyShapes(t *testing.T) {
	tests := []struct {
		name     string
		reply    any
		expected string
	}{
		{"string reply", "plain", "plain"},
		{"object reply", carrierReply{text: "object"}, "object"},
		{"mapping reply", map[string]any{"content": "mapped"}, "mapped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(&mockProvider{reply: tt.reply})
			summary, err := service.Summarize(context.Background(), "text")
			if err != nil {
				t.Fatalf("Summarize failed: %v", err)
			}
			if summary != tt.expected {
				t.Errorf("Got %q, want %q", summary, tt.expected)
			}
		})
	}
}

func TestSummarize_ProviderFailure(t *testing.T) {
	service := NewService(&mockProvider{err: errors.New("rate limited")})

	_, err := service.Summarize(context.Background(), "text")
	if err == nil {
		t.Fatal("Expected provider error to propagate")
	}
	if IsMissingCredential(err) {
		t.Error("Provider failure must not be reported as a credential problem")
	}
}
