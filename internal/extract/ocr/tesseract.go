package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/akolanti/DocAPI/pkg/logger_i"
	"github.com/otiai10/gosseract/v2"
)

type tesseractEngine struct {
	clientFactory func() *gosseract.Client
	logger        *logger_i.Logger
}

// NewTesseractEngine constructs a Tesseract-backed recognition engine. Each
// Recognize call uses a fresh gosseract client because the client is not safe
// for reuse across images.
func NewTesseractEngine() Engine {
	return &tesseractEngine{
		clientFactory: gosseract.NewClient,
		logger:        logger_i.NewLogger("ocr_tesseract"),
	}
}

func (e *tesseractEngine) Name() string { return "tesseract" }

func (e *tesseractEngine) Recognize(ctx context.Context, in Input) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer func() {
		if err := c.Close(); err != nil {
			e.logger.Error("Couldn't close the tesseract client", "error", err)
		}
	}()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
