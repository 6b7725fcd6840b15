package summarize

import (
	"context"
	"errors"
)

// ErrMissingCredential - no API key was supplied explicitly and the named
// environment variable is unset. Raised before any network call happens.
var ErrMissingCredential = errors.New("no API key provided")

// IsMissingCredential reports whether err stems from an absent API key.
func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

// Provider is one hosted language model. Generate returns the raw client
// reply; its shape differs across client-library versions, so callers must
// pass it through NormalizeReply instead of assuming a string.
type Provider interface {
	Generate(ctx context.Context, prompt string) (any, error)
}
