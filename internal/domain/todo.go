package domain

import (
	"context"
	"fmt"
	"time"
)

// Todo represents one todo item owned by a user.
type Todo struct {
	Seq         int64
	OwnerSeq    int64
	Content     string
	Date        time.Time
	Note        *string
	CompletedAt *time.Time
	CreatedAt   time.Time
	CreatedIP   string
	UpdatedAt   time.Time
	UpdatedIP   string
	DeletedAt   *time.Time
}

// Validate checks the todo fields that must hold before a write.
func (t Todo) Validate() error {
	if t.Content == "" {
		return NewValidationErr("content cannot be empty")
	}
	if len(t.Content) > 500 {
		return NewValidationErr("content must be at most 500 characters")
	}
	if t.Date.IsZero() {
		return NewValidationErr("date cannot be empty")
	}
	if t.OwnerSeq <= 0 {
		return NewValidationErr("owner is required")
	}
	return nil
}

// IsCompleted reports whether the item has a completion timestamp.
func (t Todo) IsCompleted() bool {
	return t.CompletedAt != nil
}

// IsOverdue reports whether the item is incomplete and dated strictly
// before today (midnight of the reference time).
func (t Todo) IsOverdue(now time.Time) bool {
	return !t.IsCompleted() && DateOnly(t.Date).Before(DateOnly(now))
}

// ToLLMInput formats the todo item as a string suitable for LLM input.
func (t Todo) ToLLMInput() string {
	status := "incomplete"
	if t.IsCompleted() {
		status = "completed"
	}
	return fmt.Sprintf("Seq: %d | Content: %s | Date: %s | Status: %s", t.Seq, t.Content, t.Date.Format(time.DateOnly), status)
}

// TodoPatch carries the fields of a partial todo update. Nil fields are
// left untouched.
type TodoPatch struct {
	Content *string
	Note    *string
	// Completed toggles the completion timestamp: true stamps now,
	// false clears it.
	Completed *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Content == nil && p.Note == nil && p.Completed == nil
}

// ListTodosParams represents the parameters for listing todo items.
type ListTodosParams struct {
	// On limits the listing to items dated exactly On.
	On *time.Time
	// UpTo limits the listing to items dated at or before UpTo.
	UpTo *time.Time
}

// ListTodoOption defines a function type for modifying ListTodosParams.
type ListTodoOption func(*ListTodosParams)

// WithDateOn is a ListTodoOption that filters todos dated exactly on the given day.
func WithDateOn(on time.Time) ListTodoOption {
	return func(params *ListTodosParams) {
		params.On = &on
	}
}

// WithDateUpTo is a ListTodoOption that filters todos dated at or before the given day.
func WithDateUpTo(upTo time.Time) ListTodoOption {
	return func(params *ListTodosParams) {
		params.UpTo = &upTo
	}
}

// TodoRepository defines the interface for interacting with todo items in the data store.
type TodoRepository interface {
	// ListTodos retrieves the owner's todo items, newest date last. Soft-deleted
	// items are never returned.
	ListTodos(ctx context.Context, ownerSeq int64, opts ...ListTodoOption) ([]Todo, error)

	// CreateTodo inserts the todo and returns it with its assigned sequence.
	CreateTodo(ctx context.Context, todo Todo) (Todo, error)

	// UpdateTodo applies the patch to the owner's todo. The second return is
	// false when the item does not exist or is not owned by ownerSeq.
	UpdateTodo(ctx context.Context, seq, ownerSeq int64, patch TodoPatch, now time.Time, updatedIP string) (Todo, bool, error)

	// DeleteTodo soft-deletes the owner's todo. The return is false when the
	// item does not exist or is not owned by ownerSeq.
	DeleteTodo(ctx context.Context, seq, ownerSeq int64, now time.Time, updatedIP string) (bool, error)

	// PurgeDeletedBefore hard-deletes soft-deleted rows whose deletion is older
	// than the cutoff and returns the number of rows removed.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
