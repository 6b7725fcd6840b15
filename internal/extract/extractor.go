package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/akolanti/DocAPI/internal/domain/commonModels"
	"github.com/akolanti/DocAPI/internal/extract/ocr"
	"github.com/akolanti/DocAPI/internal/extract/raster"
	"github.com/akolanti/DocAPI/pkg/logger_i"
	"github.com/lu4p/cat"
)

// Extractor turns an uploaded document into plain text. Dispatch is by file
// extension: images go through the recognition engine, PDFs get their text
// layer with a per-page OCR fallback, DOCX is read directly, anything else is
// tried as UTF-8 text.
type Extractor struct {
	engine     ocr.Engine
	rasterizer raster.Rasterizer //nil means the per-page OCR fallback is unavailable
	languages  []string
	logger     *logger_i.Logger

	//seams for tests - production uses the library readers
	readDoc  func(path string) (string, error)
	pdfPages func(data []byte) ([]string, error)
}

type Config struct {
	Engine     ocr.Engine
	Rasterizer raster.Rasterizer
	Languages  []string
}

func NewExtractor(cfg Config) *Extractor {
	return &Extractor{
		engine:     cfg.Engine,
		rasterizer: cfg.Rasterizer,
		languages:  cfg.Languages,
		logger:     logger_i.NewLogger("Extractor"),
		readDoc:    cat.File,
		pdfPages:   pdfTextLayers,
	}
}

// DocTypeOf classifies a filename by its extension.
func DocTypeOf(filename string) commonModels.DocType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return commonModels.PDF
	case ".docx":
		return commonModels.DOCX
	case ".png", ".jpg", ".jpeg":
		return commonModels.IMAGE
	default:
		return commonModels.TXT
	}
}

// Extract returns the plain text of the document. The result is the
// newline-joined text of every page or segment in original order.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	e.logger.Debug("Extract", "filename", filename, "ext", ext, "bytes", len(data))

	switch ext {
	case ".png", ".jpg", ".jpeg":
		return e.extractImage(ctx, data)
	case ".pdf":
		return e.extractPDF(ctx, data)
	case ".docx":
		return e.extractDocx(data)
	default:
		if utf8.Valid(data) {
			return string(data), nil
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func (e *Extractor) extractImage(ctx context.Context, data []byte) (string, error) {
	text, err := e.engine.Recognize(ctx, ocr.Input{Image: data, Languages: e.languages})
	if err != nil {
		return "", fmt.Errorf("optical recognition: %w", err)
	}
	return text, nil
}

// extractPDF runs the two-tier policy: the text layer is always tried first,
// and only pages that come back empty are rasterized and recognized. Without
// a rasterizer those pages stay empty - that degradation is accepted, not an
// error.
func (e *Extractor) extractPDF(ctx context.Context, data []byte) (string, error) {
	pages, err := e.pdfPages(data)
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrDecode, err)
	}

	var out []string
	for i, pageText := range pages {
		if strings.TrimSpace(pageText) == "" && e.rasterizer != nil {
			ocrText, err := e.recognizePage(ctx, data, i+1)
			if err != nil {
				return "", err
			}
			pageText += ocrText
		}
		out = append(out, pageText)
	}
	return strings.Join(out, "\n"), nil
}

func (e *Extractor) recognizePage(ctx context.Context, data []byte, pageNum int) (string, error) {
	e.logger.Debug("extractPDF", "empty text layer, falling back to OCR on page", pageNum)
	images, err := e.rasterizer.PageImages(ctx, data, pageNum)
	if err != nil {
		return "", fmt.Errorf("rasterize page %d: %w", pageNum, err)
	}

	var text strings.Builder
	for _, img := range images {
		recognized, err := e.engine.Recognize(ctx, ocr.Input{Image: img, Languages: e.languages})
		if err != nil {
			return "", fmt.Errorf("optical recognition on page %d: %w", pageNum, err)
		}
		text.WriteString(recognized)
	}
	return text.String(), nil
}

// extractDocx writes the bytes to a transient temp file because the reader
// only takes filesystem paths. The file is removed on every return path.
func (e *Extractor) extractDocx(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "upload-*.docx")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp.Name()); err != nil {
			e.logger.Error("Error removing temp file", "path", tmp.Name(), "error", err)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	text, err := e.readDoc(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrDecode, err)
	}
	return text, nil
}
