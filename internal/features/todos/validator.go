package todos

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/xyz-asif/todoservice/pkg/errors"
)

const dateOnly = "2006-01-02"

// TodoRequest is the body accepted by create and update. Username and id are
// never trusted from here: the path decides both.
// @Description Todo fields supplied by the caller
type TodoRequest struct {
	ID          int64  `json:"id" example:"1"`
	Username    string `json:"username" example:"ignored"`
	Description string `json:"description" example:"Learn Rust"`
	TargetDate  string `json:"targetDate" example:"2026-12-31"`
	Done        bool   `json:"isDone" example:"false"`
}

// ToTodo converts the request, accepting RFC 3339 timestamps or plain dates.
// Timestamps are truncated to milliseconds.
func (r *TodoRequest) ToTodo() (Todo, error) {
	todo := Todo{
		ID:          r.ID,
		Username:    r.Username,
		Description: r.Description,
		Done:        r.Done,
	}

	raw := strings.TrimSpace(r.TargetDate)
	if raw == "" {
		return todo, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		// persistent stores keep millisecond precision; both namespaces store the same value
		todo.TargetDate = t.UTC().Truncate(time.Millisecond)
		return todo, nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return Todo{}, fmt.Errorf("targetDate must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}
	todo.TargetDate = t
	return todo, nil
}

// ParseID reads a todo id from a path segment.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidID
	}
	return id, nil
}
