package customHttpClient

import (
	"net/http"

	"github.com/akolanti/DocAPI/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

var pooledClient = &http.Client{Transport: customTransport}

// Client returns the shared pooled client handed to the hosted-model SDKs so
// repeated summarize calls reuse connections.
func Client() *http.Client {
	return pooledClient
}
