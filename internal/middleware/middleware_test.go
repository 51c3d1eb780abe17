package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkbridge-io/options-api/internal/logger"
	"github.com/larkbridge-io/options-api/internal/middleware"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.Development()

	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	return router
}

func TestRecoveryTurnsPanicIntoEnvelope(t *testing.T) {
	router := newTestRouter()
	router.POST("/*path", func(c *gin.Context) {
		panic("field cache corrupted")
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":1,"msg":"Internal server error. Check worker logs.","data":{}}`, w.Body.String())
}

func TestRecoveryLeavesHealthyRequestsAlone(t *testing.T) {
	router := newTestRouter()
	router.GET("/*path", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRequestLoggerPreservesResponse(t *testing.T) {
	router := newTestRouter()
	router.GET("/*path", func(c *gin.Context) {
		switch c.Param("path") {
		case "/missing":
			c.String(http.StatusNotFound, "not found")
		default:
			c.String(http.StatusOK, "ok")
		}
	})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/", wantStatus: http.StatusOK, wantBody: "ok"},
		{path: "/missing", wantStatus: http.StatusNotFound, wantBody: "not found"},
		{path: "/options?verbose=1", wantStatus: http.StatusOK, wantBody: "ok"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, tt.wantStatus, w.Code, "path %s", tt.path)
		assert.Equal(t, tt.wantBody, w.Body.String(), "path %s", tt.path)
	}
}
