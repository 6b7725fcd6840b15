package ocr

import "context"

// Input is one raster image submitted for recognition.
type Input struct {
	// Image is the encoded payload (PNG or JPEG bytes as uploaded or rasterized).
	Image []byte
	// Languages are optional trained-data hints (e.g. "eng"). Empty means the
	// engine's installed default.
	Languages []string
}

// Engine converts a raster image into plain text. Implementations wrap an
// external recognition component and must not retry on failure.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (string, error)
}
