// ================== internal/features/todos/model.go ==================
package todos

import (
	"time"
)

// Todo represents a todo item
// @Description Todo item owned by a user
type Todo struct {
	ID          int64     `bson:"_id" json:"id" example:"1"`
	Username    string    `bson:"username" json:"username" example:"alice"`
	Description string    `bson:"description" json:"description" example:"Learn Rust"`
	TargetDate  time.Time `bson:"targetDate" json:"targetDate" example:"2026-12-31T00:00:00Z"`
	Done        bool      `bson:"isDone" json:"isDone" example:"false"`
}

// IsNew reports whether the todo has not been persisted yet.
func (t *Todo) IsNew() bool {
	return t.ID == 0
}
