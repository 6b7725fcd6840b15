package extract

import "errors"

var (
	// ErrUnsupportedFormat - the extension is off the whitelist and the bytes
	// are not valid UTF-8 text either.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrDecode - the file claims a supported format but could not be parsed.
	ErrDecode = errors.New("failed to decode document")
)
