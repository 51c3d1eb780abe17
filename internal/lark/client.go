// Package lark is a minimal client for the upstream table platform's open
// APIs: the app access token exchange and the single-page bitable record
// read that feeds option building.
package lark

import (
	"net/http"
	"strings"

	"github.com/larkbridge-io/options-api/internal/logger"
)

// maxResponseBytes bounds how much of an upstream reply is read.
const maxResponseBytes = 4 << 20

// Client talks to the upstream platform. It configures no timeouts of its
// own; cancellation comes from the request context and transport defaults.
type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
	baseURL    string
	tokens     *tokenCache
}

// NewClient builds a client rooted at baseURL. The credentials feed the
// token exchange performed before record reads.
func NewClient(log *logger.Logger, baseURL string, creds Credentials) *Client {
	base := strings.TrimRight(baseURL, "/")
	httpClient := &http.Client{}

	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    base,
		tokens:     newTokenCache(log, httpClient, base, creds),
	}
}
