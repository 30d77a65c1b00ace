package todos

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLiteStore keeps todos in the todos table created by the database migrations.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// toMillis maps the zero time to NULL so the epoch stays a real date.
func toMillis(value time.Time) sql.NullInt64 {
	if value.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: value.UTC().UnixMilli(), Valid: true}
}

func fromMillis(value sql.NullInt64) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	return time.UnixMilli(value.Int64).UTC()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (Todo, error) {
	var (
		todo   Todo
		target sql.NullInt64
	)
	if err := row.Scan(&todo.ID, &todo.Username, &todo.Description, &target, &todo.Done); err != nil {
		return Todo{}, err
	}
	todo.TargetDate = fromMillis(target)
	return todo, nil
}

func (s *SQLiteStore) ListByOwner(ctx context.Context, username string) ([]Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, description, target_date, is_done FROM todos WHERE username = ? ORDER BY id`,
		username,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (*Todo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, description, target_date, is_done FROM todos WHERE id = ?`,
		id,
	)
	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, err
	}
	return &todo, nil
}

func (s *SQLiteStore) Save(ctx context.Context, todo *Todo) (*Todo, error) {
	if todo.IsNew() {
		result, err := s.db.ExecContext(ctx,
			`INSERT INTO todos (username, description, target_date, is_done) VALUES (?, ?, ?, ?)`,
			todo.Username, todo.Description, toMillis(todo.TargetDate), todo.Done,
		)
		if err != nil {
			return nil, err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		todo.ID = id
	} else {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO todos (id, username, description, target_date, is_done) VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   username = excluded.username,
			   description = excluded.description,
			   target_date = excluded.target_date,
			   is_done = excluded.is_done`,
			todo.ID, todo.Username, todo.Description, toMillis(todo.TargetDate), todo.Done,
		)
		if err != nil {
			return nil, err
		}
	}

	out := *todo
	return &out, nil
}

func (s *SQLiteStore) DeleteByID(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}
