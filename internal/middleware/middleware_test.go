package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursefinder/internal/app/models/dto"
	"github.com/yigit/coursefinder/internal/pkg/apperrors"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(zerolog.Nop()), Recovery())
	return router
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorMessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body is not an error object: %s", w.Body.String())
	}
	return resp.Error
}

func TestRecoveryReturnsJSONError(t *testing.T) {
	router := newRouter()
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "kaboom" {
		t.Errorf("error = %q", msg)
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	router := newRouter()
	router.GET("/", func(c *gin.Context) {
		if LoggerFrom(c) == nil {
			t.Error("no request logger")
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("generated request id missing")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want the caller's id", got)
	}
}

func TestHandleAPIErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{apperrors.NewBadTimeFormatError("endTime", "noon"), http.StatusInternalServerError},
		{apperrors.NewBadRequestError("invalid request body: EOF"), http.StatusInternalServerError},
		{apperrors.ErrCatalogNotReady, http.StatusInternalServerError},
		{apperrors.NewNotFoundError("data/x.csv", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		router := newRouter()
		router.GET("/", func(c *gin.Context) { HandleAPIError(c, tt.err) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != tt.status {
			t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.status)
		}
		if msg := decodeError(t, w); msg != tt.err.Error() {
			t.Errorf("error = %q, want %q", msg, tt.err.Error())
		}
	}
}

type bindTarget struct {
	Name string   `json:"name" binding:"max=4"`
	Tags []string `json:"tags" binding:"max=2"`
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		body   string
		ok     bool
		errMsg string
	}{
		{`{"name":"abc","tags":["a"]}`, true, ""},
		{``, true, ""},
		{`{"name":"toolong"}`, false, "Name must be at most 4"},
		{`{"tags":["a","b","c"]}`, false, "Tags must be at most 2"},
		{`not json`, false, "invalid request body"},
	}

	for _, tt := range tests {
		router := newRouter()
		var ok bool
		router.POST("/", func(c *gin.Context) {
			var target bindTarget
			ok = BindJSON(c, &target)
			if ok {
				c.Status(http.StatusOK)
			}
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))
		if ok != tt.ok {
			t.Errorf("BindJSON(%q) = %v, want %v", tt.body, ok, tt.ok)
			continue
		}
		if !tt.ok {
			if w.Code != http.StatusInternalServerError {
				t.Errorf("BindJSON(%q): status = %d", tt.body, w.Code)
			}
			if msg := decodeError(t, w); !strings.Contains(msg, tt.errMsg) {
				t.Errorf("BindJSON(%q): error = %q, want %q", tt.body, msg, tt.errMsg)
			}
		}
	}
}
