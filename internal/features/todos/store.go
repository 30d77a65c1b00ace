package todos

import (
	"context"
	"fmt"

	apperrors "github.com/xyz-asif/todoservice/pkg/errors"
)

// Store persists todos. Implementations must be safe for concurrent use.
type Store interface {
	// ListByOwner returns every todo whose username matches. Callers must not rely on order.
	ListByOwner(ctx context.Context, username string) ([]Todo, error)
	// GetByID fails with ErrNotFound when no todo has that id.
	GetByID(ctx context.Context, id int64) (*Todo, error)
	// Save inserts the todo when its id is zero and replaces the stored one otherwise.
	// The assigned id is written back into todo.
	Save(ctx context.Context, todo *Todo) (*Todo, error)
	// DeleteByID fails with ErrNotFound when nothing was removed.
	DeleteByID(ctx context.Context, id int64) error
}

func notFound(id int64) error {
	return fmt.Errorf("todo %d: %w", id, apperrors.ErrNotFound)
}
