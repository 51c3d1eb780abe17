package lark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/larkbridge-io/options-api/internal/constant"
	"github.com/larkbridge-io/options-api/internal/logger"
)

// tokenCache holds the one app access token the service reuses across
// requests, plus the time it was obtained.
type tokenCache struct {
	httpClient *http.Client
	logger     *logger.Logger
	baseURL    string
	creds      Credentials
	now        func() time.Time

	mu       sync.Mutex
	token    string
	issuedAt time.Time
}

func newTokenCache(log *logger.Logger, httpClient *http.Client, baseURL string, creds Credentials) *tokenCache {
	return &tokenCache{
		httpClient: httpClient,
		logger:     log,
		baseURL:    baseURL,
		creds:      creds,
		now:        time.Now,
	}
}

// AccessToken returns the cached token while it is no older than
// constant.AccessTokenTTL and exchanges credentials for a fresh one
// otherwise. The lock covers cache state only, never the exchange itself:
// concurrent callers that both observe a stale token may both exchange,
// and the later writer wins. A failed exchange leaves the cache untouched.
func (tc *tokenCache) AccessToken(ctx context.Context) (string, error) {
	tc.mu.Lock()
	if tc.token != "" && tc.now().Sub(tc.issuedAt) <= constant.AccessTokenTTL {
		token := tc.token
		tc.mu.Unlock()
		return token, nil
	}
	tc.mu.Unlock()

	token, err := tc.exchange(ctx)
	if err != nil {
		return "", err
	}

	tc.mu.Lock()
	tc.token = token
	tc.issuedAt = tc.now()
	tc.mu.Unlock()

	tc.logger.Debug("Obtained fresh app access token")
	return token, nil
}

// exchange trades the app credentials for an access token.
func (tc *tokenCache) exchange(ctx context.Context) (string, error) {
	payload, err := json.Marshal(tokenRequest{AppID: tc.creds.AppID, AppSecret: tc.creds.AppSecret})
	if err != nil {
		return "", &AuthError{Err: fmt.Errorf("encoding token request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tc.baseURL+constant.TokenEndpointPath, bytes.NewReader(payload))
	if err != nil {
		return "", &AuthError{Err: fmt.Errorf("building token request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := tc.httpClient.Do(req)
	if err != nil {
		return "", &AuthError{Err: fmt.Errorf("calling token endpoint: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &AuthError{Err: fmt.Errorf("reading token response: %w", err)}
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &AuthError{Err: fmt.Errorf("parsing token response: %w", err)}
	}

	if parsed.Code != 0 {
		return "", &AuthError{Code: parsed.Code, Msg: parsed.Msg}
	}
	if parsed.AppAccessToken == "" {
		return "", &AuthError{Err: fmt.Errorf("token response carried no app_access_token")}
	}

	return parsed.AppAccessToken, nil
}
