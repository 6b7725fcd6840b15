package extract

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/dslipak/pdf"
)

// pdfTextLayers returns the embedded text layer of every page in order. A
// page without a text layer (or a null page object) yields an empty string so
// the caller can decide on the OCR fallback; the page slot is never dropped.
func pdfTextLayers(data []byte) ([]string, error) {
	f, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	numPages := f.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			//a broken page falls through to the OCR tier instead of failing the document
			pages = append(pages, "")
			continue
		}
		pages = append(pages, content)
	}
	return pages, nil
}

// protectExtract guards GetPlainText, which can hang on malformed content
// streams.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		return "", errors.New("timeout")
	}
}
