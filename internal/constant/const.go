package constant

import "time"

const (
	// AccessTokenTTL is how long an upstream app access token is reused
	// before a fresh exchange is performed.
	AccessTokenTTL = 3000 * time.Second

	// RecordPageSize bounds the single upstream record read. No follow-up
	// pages are requested.
	RecordPageSize = 100

	DefaultPort        = "8080"
	DefaultUpstreamURL = "https://open.larksuite.com"

	// Upstream open-API paths.
	TokenEndpointPath   = "/open-apis/auth/v3/app_access_token/internal"
	RecordsEndpointPath = "/open-apis/bitable/v1/apps/%s/tables/%s/records"
)
