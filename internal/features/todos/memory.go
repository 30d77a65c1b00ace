package todos

import (
	"context"
	"sync"
)

// MemoryStore keeps todos in process memory, in insertion order.
type MemoryStore struct {
	mu     sync.Mutex
	todos  []Todo
	nextID int64
}

func NewMemoryStore(seed ...Todo) *MemoryStore {
	s := &MemoryStore{nextID: 1}
	for i := range seed {
		todo := seed[i]
		_, _ = s.Save(context.Background(), &todo)
	}
	return s
}

func (s *MemoryStore) ListByOwner(ctx context.Context, username string) ([]Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Todo{}
	for _, todo := range s.todos {
		if todo.Username == username {
			out = append(out, todo)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id int64) (*Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		todo := s.todos[i]
		return &todo, nil
	}
	return nil, notFound(id)
}

func (s *MemoryStore) Save(ctx context.Context, todo *Todo) (*Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if todo.IsNew() {
		todo.ID = s.nextID
		s.nextID++
		s.todos = append(s.todos, *todo)
		out := *todo
		return &out, nil
	}

	if i := s.indexOf(todo.ID); i >= 0 {
		s.todos[i] = *todo
	} else {
		s.todos = append(s.todos, *todo)
	}
	// explicit ids must never be handed out again
	if todo.ID >= s.nextID {
		s.nextID = todo.ID + 1
	}
	out := *todo
	return &out, nil
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (s *MemoryStore) indexOf(id int64) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}
