package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

const selectTodosSQL = "SELECT todo_seq, owner_seq, content, todo_date, note, completed_at, created_at, created_ip, updated_at, updated_ip FROM todos WHERE owner_seq = $1 AND deleted_at IS NULL"
const orderTodosSQL = " ORDER BY todo_date ASC, todo_seq ASC"
const returningTodosSQL = "RETURNING todo_seq,owner_seq,content,todo_date,note,completed_at,created_at,created_ip,updated_at,updated_ip"

func strPtr(s string) *string { return &s }

func newTodoRows(todos ...domain.Todo) *sqlmock.Rows {
	rows := sqlmock.NewRows(todoFields)
	for _, t := range todos {
		rows.AddRow(
			t.Seq, t.OwnerSeq, t.Content, t.Date, t.Note, t.CompletedAt,
			t.CreatedAt, t.CreatedIP, t.UpdatedAt, t.UpdatedIP,
		)
	}
	return rows
}

func TestTodoRepository_ListTodos(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	todo := domain.Todo{
		Seq: 1, OwnerSeq: 7, Content: "우유 사기", Date: today,
		CreatedAt: fixedTime, CreatedIP: "10.0.0.1",
		UpdatedAt: fixedTime, UpdatedIP: "10.0.0.1",
	}

	tests := map[string]struct {
		opts            []domain.ListTodoOption
		setExpectations func(mock sqlmock.Sqlmock)
		expectedTodos   []domain.Todo
		expectErr       bool
	}{
		"no-filter": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectTodosSQL + orderTodosSQL).
					WithArgs(int64(7)).
					WillReturnRows(newTodoRows(todo))
			},
			expectedTodos: []domain.Todo{todo},
		},
		"on-date": {
			opts: []domain.ListTodoOption{domain.WithDateOn(today)},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectTodosSQL + " AND todo_date = $2" + orderTodosSQL).
					WithArgs(int64(7), today).
					WillReturnRows(newTodoRows(todo))
			},
			expectedTodos: []domain.Todo{todo},
		},
		"up-to-date": {
			opts: []domain.ListTodoOption{domain.WithDateUpTo(today)},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectTodosSQL + " AND todo_date <= $2" + orderTodosSQL).
					WithArgs(int64(7), today).
					WillReturnRows(newTodoRows(todo))
			},
			expectedTodos: []domain.Todo{todo},
		},
		"empty-result": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectTodosSQL + orderTodosSQL).
					WithArgs(int64(7)).
					WillReturnRows(newTodoRows())
			},
			expectedTodos: nil,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectTodosSQL + orderTodosSQL).
					WithArgs(int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewTodoRepository(db)
			got, gotErr := repo.ListTodos(context.Background(), 7, tt.opts...)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedTodos, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTodoRepository_CreateTodo(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	todo := domain.Todo{
		OwnerSeq: 7, Content: "우유 사기",
		Date:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Note:      strPtr("저지방으로"),
		CreatedAt: fixedTime, CreatedIP: "10.0.0.1",
		UpdatedAt: fixedTime, UpdatedIP: "10.0.0.1",
	}
	insertSQL := "INSERT INTO todos (owner_seq,content,todo_date,note,created_at,created_ip,updated_at,updated_ip) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING todo_seq"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedSeq     int64
		expectErr       bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs(
						todo.OwnerSeq, todo.Content, todo.Date, todo.Note,
						todo.CreatedAt, todo.CreatedIP, todo.UpdatedAt, todo.UpdatedIP,
					).
					WillReturnRows(sqlmock.NewRows([]string{"todo_seq"}).AddRow(int64(42)))
			},
			expectedSeq: 42,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs(
						todo.OwnerSeq, todo.Content, todo.Date, todo.Note,
						todo.CreatedAt, todo.CreatedIP, todo.UpdatedAt, todo.UpdatedIP,
					).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewTodoRepository(db)
			got, gotErr := repo.CreateTodo(context.Background(), todo)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedSeq, got.Seq)
				assert.Equal(t, todo.Content, got.Content)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTodoRepository_UpdateTodo(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	updated := domain.Todo{
		Seq: 3, OwnerSeq: 7, Content: "우유 사기", Date: today,
		CompletedAt: &fixedTime,
		CreatedAt:   fixedTime, CreatedIP: "10.0.0.1",
		UpdatedAt: fixedTime, UpdatedIP: "10.0.0.2",
	}

	tests := map[string]struct {
		patch           domain.TodoPatch
		setExpectations func(mock sqlmock.Sqlmock)
		expectedTodo    domain.Todo
		expectedFound   bool
		expectErr       bool
	}{
		"complete": {
			patch: domain.TodoPatch{Completed: boolPtr(true)},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE todos SET updated_at = $1, updated_ip = $2, completed_at = $3 WHERE todo_seq = $4 AND owner_seq = $5 AND deleted_at IS NULL " + returningTodosSQL).
					WithArgs(fixedTime, "10.0.0.2", fixedTime, int64(3), int64(7)).
					WillReturnRows(newTodoRows(updated))
			},
			expectedTodo:  updated,
			expectedFound: true,
		},
		"uncomplete-clears-timestamp": {
			patch: domain.TodoPatch{Completed: boolPtr(false)},
			setExpectations: func(mock sqlmock.Sqlmock) {
				row := updated
				row.CompletedAt = nil
				mock.ExpectQuery("UPDATE todos SET updated_at = $1, updated_ip = $2, completed_at = $3 WHERE todo_seq = $4 AND owner_seq = $5 AND deleted_at IS NULL " + returningTodosSQL).
					WithArgs(fixedTime, "10.0.0.2", nil, int64(3), int64(7)).
					WillReturnRows(newTodoRows(row))
			},
			expectedTodo: func() domain.Todo {
				row := updated
				row.CompletedAt = nil
				return row
			}(),
			expectedFound: true,
		},
		"content-and-note": {
			patch: domain.TodoPatch{Content: strPtr("두유 사기"), Note: strPtr("무가당")},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE todos SET updated_at = $1, updated_ip = $2, content = $3, note = $4 WHERE todo_seq = $5 AND owner_seq = $6 AND deleted_at IS NULL " + returningTodosSQL).
					WithArgs(fixedTime, "10.0.0.2", "두유 사기", "무가당", int64(3), int64(7)).
					WillReturnRows(newTodoRows(updated))
			},
			expectedTodo:  updated,
			expectedFound: true,
		},
		"not-found": {
			patch: domain.TodoPatch{Completed: boolPtr(true)},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE todos SET updated_at = $1, updated_ip = $2, completed_at = $3 WHERE todo_seq = $4 AND owner_seq = $5 AND deleted_at IS NULL " + returningTodosSQL).
					WithArgs(fixedTime, "10.0.0.2", fixedTime, int64(3), int64(7)).
					WillReturnRows(newTodoRows())
			},
			expectedFound: false,
		},
		"database-error": {
			patch: domain.TodoPatch{Completed: boolPtr(true)},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE todos SET updated_at = $1, updated_ip = $2, completed_at = $3 WHERE todo_seq = $4 AND owner_seq = $5 AND deleted_at IS NULL " + returningTodosSQL).
					WithArgs(fixedTime, "10.0.0.2", fixedTime, int64(3), int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewTodoRepository(db)
			got, found, gotErr := repo.UpdateTodo(context.Background(), 3, 7, tt.patch, fixedTime, "10.0.0.2")
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFound, found)
				assert.Equal(t, tt.expectedTodo, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTodoRepository_DeleteTodo(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	deleteSQL := "UPDATE todos SET deleted_at = $1, updated_at = $2, updated_ip = $3 WHERE todo_seq = $4 AND owner_seq = $5 AND deleted_at IS NULL"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedFound   bool
		expectErr       bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(deleteSQL).
					WithArgs(fixedTime, fixedTime, "10.0.0.2", int64(3), int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedFound: true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(deleteSQL).
					WithArgs(fixedTime, fixedTime, "10.0.0.2", int64(3), int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedFound: false,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(deleteSQL).
					WithArgs(fixedTime, fixedTime, "10.0.0.2", int64(3), int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewTodoRepository(db)
			found, gotErr := repo.DeleteTodo(context.Background(), 3, 7, fixedTime, "10.0.0.2")
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFound, found)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTodoRepository_PurgeDeletedBefore(t *testing.T) {
	cutoff := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)
	purgeSQL := "DELETE FROM todos WHERE deleted_at IS NOT NULL AND deleted_at < $1"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedPurged  int64
		expectErr       bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(purgeSQL).
					WithArgs(cutoff).
					WillReturnResult(sqlmock.NewResult(0, 5))
			},
			expectedPurged: 5,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(purgeSQL).
					WithArgs(cutoff).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewTodoRepository(db)
			got, gotErr := repo.PurgeDeletedBefore(context.Background(), cutoff)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedPurged, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func boolPtr(b bool) *bool { return &b }

func TestInitTodoRepository_Initialize(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	itr := InitTodoRepository{DB: db}

	ctx, err := itr.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[domain.TodoRepository]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
