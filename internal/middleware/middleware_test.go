package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/todoservice/internal/pkg/logger"
)

func corsRouter(origin string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(origin))
	r.GET("/users/alice/todos", func(c *gin.Context) {
		c.JSON(200, []string{})
	})
	return r
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	r := corsRouter("http://localhost:4200/")

	req := httptest.NewRequest(http.MethodGet, "/users/alice/todos", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, "http://localhost:4200", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Location")
}

func TestCORS_IgnoresOtherOrigins(t *testing.T) {
	r := corsRouter("http://localhost:4200")

	req := httptest.NewRequest(http.MethodGet, "/users/alice/todos", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	r := corsRouter("http://localhost:4200")

	req := httptest.NewRequest(http.MethodOptions, "/users/alice/todos", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	require.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_WildcardEchoesOrigin(t *testing.T) {
	r := corsRouter("*")

	req := httptest.NewRequest(http.MethodGet, "/users/alice/todos", nil)
	req.Header.Set("Origin", "http://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, "http://anywhere.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogger_WritesRequestLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	l := logger.New(logger.DEBUG)
	l.SetOutput(&buf)

	cfg := DefaultLoggerConfig()
	cfg.Logger = l

	r := gin.New()
	r.Use(LoggerWithConfig(cfg))
	r.POST("/users/alice/todos", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
	})
	r.GET("/health", func(c *gin.Context) { c.Status(200) })

	req := httptest.NewRequest(http.MethodPost, "/users/alice/todos", strings.NewReader(`{"description":"x","apiKey":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	out := buf.String()
	require.Contains(t, out, "[WARN] POST /users/alice/todos 404")
	require.Contains(t, out, `"description":"x"`)
	require.NotContains(t, out, "hunter2")
	require.Contains(t, out, "Todo not found")
	require.NotContains(t, out, "/health")
}

func TestFormatSize(t *testing.T) {
	require.Equal(t, "512B", formatSize(512))
	require.Equal(t, "2.0KB", formatSize(2048))
	require.Equal(t, "1.5MB", formatSize(1024*1024*3/2))
}
