package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSuccessAndErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]string{"foo": "bar"})
	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "success", body["status"])
	require.Contains(t, body, "data")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Error(c, 400, "bad request", "BAD_REQ")
	require.Equal(t, 400, w.Code)
	var bodyErr map[string]any
	err = json.Unmarshal(w.Body.Bytes(), &bodyErr)
	require.NoError(t, err)
	require.Equal(t, "bad request", bodyErr["error"])
	require.Equal(t, "BAD_REQ", bodyErr["code"])
}

func TestEntityIsNotWrapped(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Entity(c, 200, []int{1, 2})
	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `[1,2]`, w.Body.String())
}

func TestCreatedAtAndNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	CreatedAt(c, "http://example.com/users/alice/todos/1")
	c.Writer.WriteHeaderNow()
	require.Equal(t, 201, w.Code)
	require.Equal(t, "http://example.com/users/alice/todos/1", w.Header().Get("Location"))
	require.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	NoContent(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, 204, w.Code)
}

func TestHelpersSetCodes(t *testing.T) {
	cases := []struct {
		call   func(c *gin.Context)
		status int
		code   string
	}{
		{func(c *gin.Context) { BindJSONError(c, errors.New("eof")) }, 400, "INVALID_JSON"},
		{func(c *gin.Context) { DatabaseError(c, "boom") }, 500, "DATABASE_ERROR"},
		{func(c *gin.Context) { NotFound(c, "missing", "TODO_NOT_FOUND") }, 404, "TODO_NOT_FOUND"},
		{func(c *gin.Context) { TooManyRequests(c, "slow down") }, 429, ""},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		tc.call(c)
		require.Equal(t, tc.status, w.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, tc.code, body.Code)
	}
}
