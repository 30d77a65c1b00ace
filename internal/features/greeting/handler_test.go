package greeting

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/todoservice/internal/pkg/i18n"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	bundle, err := i18n.LoadEmbedded("en-US")
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, bundle)
	return r
}

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHelloWorld(t *testing.T) {
	w := get(newRouter(t), "/hello-world", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Hello-World", w.Body.String())
}

func TestHelloWorldBean(t *testing.T) {
	w := get(newRouter(t), "/hello-world-bean", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Hello-World-Bean"}`, w.Body.String())
}

func TestHelloWorldPathVariable(t *testing.T) {
	w := get(newRouter(t), "/hello-world/path-variable/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Hello-World alice"}`, w.Body.String())
}

func TestHelloWorldInternationalized(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		accept string
		want   string
	}{
		{"", "Good Morning"},
		{"nl", "Goede Morgen"},
		{"fr-FR", "Bonjour"},
		{"ja-JP", "Default Message"},
	}
	for _, tc := range cases {
		headers := map[string]string{}
		if tc.accept != "" {
			headers["Accept-Language"] = tc.accept
		}
		w := get(r, "/hello-world-internationalized", headers)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, tc.want, w.Body.String(), tc.accept)
		require.Equal(t, "Accept-Language", w.Header().Get("Vary"))
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	w := get(newRouter(t), "/hello-world-bean-one", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
