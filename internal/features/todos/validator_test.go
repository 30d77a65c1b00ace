package todos

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/xyz-asif/todoservice/pkg/errors"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	require.Equal(t, int64(12), id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseID(bad)
		require.ErrorIs(t, err, apperrors.ErrInvalidID, bad)
	}
}

func TestTodoRequest_ToTodo(t *testing.T) {
	req := TodoRequest{Description: "d", TargetDate: "2026-10-16T09:30:00.000+02:00", Done: true}
	todo, err := req.ToTodo()
	require.NoError(t, err)
	require.True(t, todo.Done)
	require.Equal(t, time.Date(2026, 10, 16, 7, 30, 0, 0, time.UTC), todo.TargetDate)

	req = TodoRequest{TargetDate: ""}
	todo, err = req.ToTodo()
	require.NoError(t, err)
	require.True(t, todo.TargetDate.IsZero())

	req = TodoRequest{TargetDate: "16/10/2026"}
	_, err = req.ToTodo()
	require.Error(t, err)
}

func TestTodoRequest_ToTodoTruncatesToMillis(t *testing.T) {
	req := TodoRequest{Description: "d", TargetDate: "2026-10-16T09:30:00.123456789Z"}
	todo, err := req.ToTodo()
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 10, 16, 9, 30, 0, 123000000, time.UTC), todo.TargetDate)
}

func TestNanoTargetDateRoundTripsInBothNamespaces(t *testing.T) {
	for name, newStore := range storeVariants() {
		r := newTestRouter(newStore(t), "/jpa")
		w := do(r, http.MethodPost, "/jpa/users/alice/todos", `{"description":"d","targetDate":"2026-10-16T09:30:00.123456789Z"}`)
		require.Equal(t, http.StatusCreated, w.Code, name)

		todo := decodeTodo(t, do(r, http.MethodGet, "/jpa/users/alice/todos/1", ""))
		require.Equal(t, time.Date(2026, 10, 16, 9, 30, 0, 123000000, time.UTC), todo.TargetDate.UTC(), name)
	}
}
