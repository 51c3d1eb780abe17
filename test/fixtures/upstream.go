// Package fixtures provides shared test doubles for the service's tests.
package fixtures

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// Record is one canned upstream row served by the fake.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Upstream is an in-process stand-in for the table platform's open APIs:
// the app access token exchange and the bitable record read. All state is
// guarded so tests can reconfigure replies between requests.
type Upstream struct {
	server *httptest.Server

	mu               sync.Mutex
	token            string
	authCode         int
	authMsg          string
	authRawBody      string
	records          []Record
	recordsCode      int
	recordsMsg       string
	recordsRawBody   string
	authCalls        int
	recordsCalls     int
	lastAuthBody     map[string]string
	lastRecordsPath  string
	lastRecordsAuth  string
	lastRecordsQuery url.Values
}

// NewUpstream starts the fake and closes it when the test finishes.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()

	u := &Upstream{token: "t-fixture"}
	u.server = httptest.NewServer(http.HandlerFunc(u.handle))
	t.Cleanup(u.server.Close)
	return u
}

// URL is the fake's base URL, to be used as the client's upstream.
func (u *Upstream) URL() string {
	return u.server.URL
}

// Close shuts the fake down early, for transport-failure tests.
func (u *Upstream) Close() {
	u.server.Close()
}

// SetToken sets the access token the auth endpoint issues.
func (u *Upstream) SetToken(token string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.token = token
}

// SetAuthReply makes the auth endpoint answer with the given envelope code.
func (u *Upstream) SetAuthReply(code int, msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.authCode = code
	u.authMsg = msg
}

// SetAuthBody makes the auth endpoint serve the given body verbatim.
func (u *Upstream) SetAuthBody(raw string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.authRawBody = raw
}

// SetRecords sets the rows the record read returns.
func (u *Upstream) SetRecords(records ...Record) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.records = records
}

// SetRecordsReply makes the record read answer with the given envelope code.
func (u *Upstream) SetRecordsReply(code int, msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.recordsCode = code
	u.recordsMsg = msg
}

// SetRecordsBody makes the record read serve the given body verbatim.
func (u *Upstream) SetRecordsBody(raw string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.recordsRawBody = raw
}

// AuthCalls reports how many token exchanges the fake served.
func (u *Upstream) AuthCalls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.authCalls
}

// RecordsCalls reports how many record reads the fake served.
func (u *Upstream) RecordsCalls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.recordsCalls
}

// LastAuthBody returns the JSON body of the most recent token exchange.
func (u *Upstream) LastAuthBody() map[string]string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastAuthBody
}

// LastRecordsPath returns the path of the most recent record read.
func (u *Upstream) LastRecordsPath() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastRecordsPath
}

// LastRecordsAuth returns the Authorization header of the most recent
// record read.
func (u *Upstream) LastRecordsAuth() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastRecordsAuth
}

// LastRecordsQuery returns the query of the most recent record read.
func (u *Upstream) LastRecordsQuery() url.Values {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastRecordsQuery
}

func (u *Upstream) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/open-apis/auth/v3/app_access_token/internal":
		u.handleAuth(w, r)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/open-apis/bitable/v1/apps/"):
		u.handleRecords(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (u *Upstream) handleAuth(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.authCalls++
	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body)
	u.lastAuthBody = body
	token, code, msg, raw := u.token, u.authCode, u.authMsg, u.authRawBody
	u.mu.Unlock()

	if raw != "" {
		fmt.Fprint(w, raw)
		return
	}

	writeJSON(w, map[string]any{
		"code":             code,
		"msg":              msg,
		"app_access_token": token,
	})
}

func (u *Upstream) handleRecords(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.recordsCalls++
	u.lastRecordsPath = r.URL.Path
	u.lastRecordsAuth = r.Header.Get("Authorization")
	u.lastRecordsQuery = r.URL.Query()
	records, code, msg, raw := u.records, u.recordsCode, u.recordsMsg, u.recordsRawBody
	u.mu.Unlock()

	if raw != "" {
		fmt.Fprint(w, raw)
		return
	}

	if records == nil {
		records = []Record{}
	}
	writeJSON(w, map[string]any{
		"code": code,
		"msg":  msg,
		"data": map[string]any{"items": records},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
