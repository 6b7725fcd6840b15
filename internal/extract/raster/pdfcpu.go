package raster

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/akolanti/DocAPI/pkg/logger_i"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

type pdfcpuRasterizer struct {
	logger *logger_i.Logger
}

// NewPDFCPURasterizer returns a Rasterizer backed by pdfcpu image extraction.
// Scanned PDFs store each page as one embedded image, which is exactly what
// the OCR fallback needs.
func NewPDFCPURasterizer() Rasterizer {
	return &pdfcpuRasterizer{logger: logger_i.NewLogger("raster_pdfcpu")}
}

func (r *pdfcpuRasterizer) PageImages(ctx context.Context, pdfData []byte, pageNum int) ([][]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	pageImages, err := api.ExtractImagesRaw(bytes.NewReader(pdfData), []string{strconv.Itoa(pageNum)}, nil)
	if err != nil {
		return nil, fmt.Errorf("extract page %d images: %w", pageNum, err)
	}

	var images [][]byte
	for _, pageMap := range pageImages {
		for _, img := range pageMap {
			data, err := io.ReadAll(img)
			if err != nil {
				return nil, fmt.Errorf("read page %d image %s: %w", pageNum, img.Name, err)
			}
			images = append(images, data)
		}
	}
	r.logger.Debug("rasterized page", "page", pageNum, "images", len(images))
	return images, nil
}
