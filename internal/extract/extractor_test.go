package extract

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/akolanti/DocAPI/internal/domain/commonModels"
	"github.com/akolanti/DocAPI/internal/extract/ocr"
)

// --- Mocks ---

type mockEngine struct {
	text      string
	err       error
	callCount int
	lastInput ocr.Input
}

func (m *mockEngine) Name() string { return "mock" }

func (m *mockEngine) Recognize(ctx context.Context, in ocr.Input) (string, error) {
	m.callCount++
	m.lastInput = in
	return m.text, m.err
}

type mockRasterizer struct {
	images    [][]byte
	err       error
	callPages []int
}

func (m *mockRasterizer) PageImages(ctx context.Context, pdfData []byte, pageNum int) ([][]byte, error) {
	m.callPages = append(m.callPages, pageNum)
	return m.images, m.err
}

func testExtractor(engine ocr.Engine) *Extractor {
	return NewExtractor(Config{Engine: engine, Languages: []string{"eng"}})
}

// --- Unit Tests ---

func TestDocTypeOf(t *testing.T) {
	tests := []struct {
		path     string
		expected commonModels.DocType
	}{
		{"test.pdf", commonModels.PDF},
		{"DOC.DOCX", commonModels.DOCX},
		{"image.png", commonModels.IMAGE},
		{"photo.JPEG", commonModels.IMAGE},
		{"notes.txt", commonModels.TXT},
	}

	for _, tt := range tests {
		if got := DocTypeOf(tt.path); got != tt.expected {
			t.Errorf("DocTypeOf(%s) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}

func TestExtract_Image(t *testing.T) {
	engine := &mockEngine{text: "recognized words"}
	e := testExtractor(engine)

	for _, name := range []string{"scan.png", "scan.jpg", "scan.JPEG"} {
		engine.callCount = 0
		text, err := e.Extract(context.Background(), []byte{0x89, 0x50}, name)
		if err != nil {
			t.Fatalf("Extract(%s) failed: %v", name, err)
		}
		if text != "recognized words" {
			t.Errorf("Extract(%s) = %q; want engine output", name, text)
		}
		if engine.callCount != 1 {
			t.Errorf("Extract(%s): engine called %d times, want 1", name, engine.callCount)
		}
		if len(engine.lastInput.Languages) != 1 || engine.lastInput.Languages[0] != "eng" {
			t.Errorf("Extract(%s): language hint not forwarded: %v", name, engine.lastInput.Languages)
		}
	}
}

func TestExtract_ImageEngineFailure(t *testing.T) {
	engine := &mockEngine{err: errors.New("tesseract exploded")}
	e := testExtractor(engine)

	_, err := e.Extract(context.Background(), []byte{1, 2, 3}, "scan.png")
	if err == nil {
		t.Fatal("Expected engine error to propagate")
	}
}

func TestExtract_UnknownExtensionUTF8(t *testing.T) {
	e := testExtractor(&mockEngine{})

	text, err := e.Extract(context.Background(), []byte("plain text content"), "notes.log")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if text != "plain text content" {
		t.Errorf("Got %q, want decoded bytes", text)
	}
}

func TestExtract_UnknownExtensionInvalidBytes(t *testing.T) {
	e := testExtractor(&mockEngine{})

	_, err := e.Extract(context.Background(), []byte{0xff, 0xfe, 0xfd}, "blob.bin")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), ".bin") {
		t.Errorf("Error should name the extension: %v", err)
	}
}

func TestExtract_Docx(t *testing.T) {
	engine := &mockEngine{}
	e := testExtractor(engine)

	var seenPath string
	e.readDoc = func(path string) (string, error) {
		seenPath = path
		data, err := os.ReadFile(path)
		return string(data), err
	}

	text, err := e.Extract(context.Background(), []byte("docx body"), "report.docx")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if text != "docx body" {
		t.Errorf("Got %q, want temp file contents", text)
	}
	if engine.callCount != 0 {
		t.Error("DOCX extraction must never invoke the recognition engine")
	}
	if _, err := os.Stat(seenPath); !os.IsNotExist(err) {
		t.Errorf("Temp file %s was not removed", seenPath)
	}
}

func TestExtract_DocxReaderFailure(t *testing.T) {
	e := testExtractor(&mockEngine{})
	e.readDoc = func(path string) (string, error) {
		return "", errors.New("not a zip")
	}

	_, err := e.Extract(context.Background(), []byte("junk"), "broken.docx")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Expected ErrDecode, got %v", err)
	}
}

func TestExtract_PDFDigitalTextLayer(t *testing.T) {
	engine := &mockEngine{}
	rasterizer := &mockRasterizer{}
	e := NewExtractor(Config{Engine: engine, Rasterizer: rasterizer})
	e.pdfPages = func(data []byte) ([]string, error) {
		return []string{"page one", "page two"}, nil
	}

	text, err := e.Extract(context.Background(), []byte("%PDF"), "digital.pdf")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if text != "page one\npage two" {
		t.Errorf("Got %q, want pages joined by newline", text)
	}
	if engine.callCount != 0 {
		t.Error("No OCR expected when every page has a text layer")
	}
	if len(rasterizer.callPages) != 0 {
		t.Error("No rasterization expected when every page has a text layer")
	}
}

func TestExtract_PDFScannedWithRasterizer(t *testing.T) {
	engine := &mockEngine{text: "ocr text"}
	rasterizer := &mockRasterizer{images: [][]byte{{1}}}
	e := NewExtractor(Config{Engine: engine, Rasterizer: rasterizer})
	e.pdfPages = func(data []byte) ([]string, error) {
		return []string{"", "  "}, nil
	}

	text, err := e.Extract(context.Background(), []byte("%PDF"), "scanned.pdf")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if text != "ocr text\n  ocr text" {
		t.Errorf("Got %q, want per-page OCR output appended", text)
	}
	if len(rasterizer.callPages) != 2 || rasterizer.callPages[0] != 1 || rasterizer.callPages[1] != 2 {
		t.Errorf("Rasterizer should run per empty page in order, got %v", rasterizer.callPages)
	}
	if engine.callCount != 2 {
		t.Errorf("Engine called %d times, want 2", engine.callCount)
	}
}

func TestExtract_PDFScannedWithoutRasterizer(t *testing.T) {
	engine := &mockEngine{}
	e := NewExtractor(Config{Engine: engine}) //no rasterizer configured
	e.pdfPages = func(data []byte) ([]string, error) {
		return []string{"", ""}, nil
	}

	text, err := e.Extract(context.Background(), []byte("%PDF"), "scanned.pdf")
	if err != nil {
		t.Fatalf("Missing rasterizer must not raise, got %v", err)
	}
	if strings.TrimSpace(text) != "" {
		t.Errorf("Got %q, want empty text for scanned pages without rasterizer", text)
	}
	if engine.callCount != 0 {
		t.Error("Engine must not run without rasterized page images")
	}
}

func TestExtract_PDFMixedPages(t *testing.T) {
	engine := &mockEngine{text: "ocr text"}
	rasterizer := &mockRasterizer{images: [][]byte{{1}}}
	e := NewExtractor(Config{Engine: engine, Rasterizer: rasterizer})
	e.pdfPages = func(data []byte) ([]string, error) {
		return []string{"digital page", "", "another digital page"}, nil
	}

	text, err := e.Extract(context.Background(), []byte("%PDF"), "mixed.pdf")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if text != "digital page\nocr text\nanother digital page" {
		t.Errorf("Got %q, want OCR only on the empty page", text)
	}
	if len(rasterizer.callPages) != 1 || rasterizer.callPages[0] != 2 {
		t.Errorf("Only page 2 should be rasterized, got %v", rasterizer.callPages)
	}
}

func TestExtract_PDFDecodeError(t *testing.T) {
	e := testExtractor(&mockEngine{})
	e.pdfPages = func(data []byte) ([]string, error) {
		return nil, errors.New("bad xref")
	}

	_, err := e.Extract(context.Background(), []byte("not a pdf"), "corrupt.pdf")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Expected ErrDecode, got %v", err)
	}
}
