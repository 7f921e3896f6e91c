package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var todoFields = []string{
	"todo_seq",
	"owner_seq",
	"content",
	"todo_date",
	"note",
	"completed_at",
	"created_at",
	"created_ip",
	"updated_at",
	"updated_ip",
}

// TodoRepository implements the domain.TodoRepository interface using
// PostgreSQL as the storage backend. Deletion is a soft delete; every query
// excludes soft-deleted rows.
type TodoRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTodoRepository creates a new instance of TodoRepository.
func NewTodoRepository(br squirrel.BaseRunner) TodoRepository {
	return TodoRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListTodos lists the owner's todos with optional date filters.
func (tr TodoRepository) ListTodos(ctx context.Context, ownerSeq int64, opts ...domain.ListTodoOption) ([]domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("owner_seq", ownerSeq),
	))
	defer span.End()

	params := &domain.ListTodosParams{}
	for _, opt := range opts {
		opt(params)
	}

	qry := tr.sb.
		Select(todoFields...).
		From("todos").
		Where(squirrel.Eq{"owner_seq": ownerSeq}).
		Where("deleted_at IS NULL").
		OrderBy("todo_date ASC", "todo_seq ASC")

	if params.On != nil {
		qry = qry.Where(squirrel.Eq{"todo_date": *params.On})
	}
	if params.UpTo != nil {
		qry = qry.Where(squirrel.LtOrEq{"todo_date": *params.UpTo})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var todos []domain.Todo
	for rows.Next() {
		var todo domain.Todo
		err := rows.Scan(
			&todo.Seq,
			&todo.OwnerSeq,
			&todo.Content,
			&todo.Date,
			&todo.Note,
			&todo.CompletedAt,
			&todo.CreatedAt,
			&todo.CreatedIP,
			&todo.UpdatedAt,
			&todo.UpdatedIP,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return todos, nil
}

// CreateTodo inserts the todo and returns it with its assigned sequence.
func (tr TodoRepository) CreateTodo(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := tr.sb.
		Insert("todos").
		Columns(
			"owner_seq",
			"content",
			"todo_date",
			"note",
			"created_at",
			"created_ip",
			"updated_at",
			"updated_ip",
		).
		Values(
			todo.OwnerSeq,
			todo.Content,
			todo.Date,
			todo.Note,
			todo.CreatedAt,
			todo.CreatedIP,
			todo.UpdatedAt,
			todo.UpdatedIP,
		).
		Suffix("RETURNING todo_seq").
		QueryRowContext(spanCtx).
		Scan(&todo.Seq)

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	return todo, nil
}

// UpdateTodo applies the patch to the owner's todo and returns the updated
// row. found is false when no live row matches the seq and owner.
func (tr TodoRepository) UpdateTodo(ctx context.Context, seq, ownerSeq int64, patch domain.TodoPatch, now time.Time, updatedIP string) (domain.Todo, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("todo_seq", seq),
	))
	defer span.End()

	qry := tr.sb.
		Update("todos").
		Set("updated_at", now).
		Set("updated_ip", updatedIP).
		Where(squirrel.Eq{"todo_seq": seq}).
		Where(squirrel.Eq{"owner_seq": ownerSeq}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + joinFields())

	if patch.Content != nil {
		qry = qry.Set("content", *patch.Content)
	}
	if patch.Note != nil {
		qry = qry.Set("note", *patch.Note)
	}
	if patch.Completed != nil {
		if *patch.Completed {
			qry = qry.Set("completed_at", now)
		} else {
			qry = qry.Set("completed_at", nil)
		}
	}

	var todo domain.Todo
	err := qry.QueryRowContext(spanCtx).Scan(
		&todo.Seq,
		&todo.OwnerSeq,
		&todo.Content,
		&todo.Date,
		&todo.Note,
		&todo.CompletedAt,
		&todo.CreatedAt,
		&todo.CreatedIP,
		&todo.UpdatedAt,
		&todo.UpdatedIP,
	)
	if err == sql.ErrNoRows {
		return domain.Todo{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, false, err
	}

	return todo, true, nil
}

// DeleteTodo soft-deletes the owner's todo. found is false when no live row
// matches the seq and owner.
func (tr TodoRepository) DeleteTodo(ctx context.Context, seq, ownerSeq int64, now time.Time, updatedIP string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("todo_seq", seq),
	))
	defer span.End()

	res, err := tr.sb.
		Update("todos").
		Set("deleted_at", now).
		Set("updated_at", now).
		Set("updated_ip", updatedIP).
		Where(squirrel.Eq{"todo_seq": seq}).
		Where(squirrel.Eq{"owner_seq": ownerSeq}).
		Where("deleted_at IS NULL").
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	return affected > 0, nil
}

// PurgeDeletedBefore hard-deletes soft-deleted rows past the cutoff.
func (tr TodoRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := tr.sb.
		Delete("todos").
		Where("deleted_at IS NOT NULL").
		Where(squirrel.Lt{"deleted_at": cutoff}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	purged, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("todos.purged", purged))
	return purged, nil
}

func joinFields() string {
	out := todoFields[0]
	for _, f := range todoFields[1:] {
		out += "," + f
	}
	return out
}

// InitTodoRepository is a Symbiont initializer for TodoRepository.
type InitTodoRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TodoRepository in the dependency container.
func (tr InitTodoRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TodoRepository](NewTodoRepository(tr.DB))
	return ctx, nil
}
