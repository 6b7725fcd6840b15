package raster

import "context"

// Rasterizer produces the raster images backing a single PDF page so a
// recognition engine can run on pages without a text layer. It is an optional
// capability: callers must treat a nil Rasterizer as "unavailable" and let
// scanned pages yield empty text instead of failing.
type Rasterizer interface {
	// PageImages returns the encoded images for the 1-based page of the given
	// PDF bytes, in document order.
	PageImages(ctx context.Context, pdfData []byte, pageNum int) ([][]byte, error)
}
