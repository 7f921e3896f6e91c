package usecases

import (
	"context"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListTodos defines the interface for the ListTodos use case.
type ListTodos interface {
	Execute(ctx context.Context, ownerSeq int64, opts ...domain.ListTodoOption) ([]domain.Todo, error)
}

// ListTodosImpl is the implementation of the ListTodos use case.
type ListTodosImpl struct {
	repo domain.TodoRepository
}

// NewListTodosImpl creates a new instance of ListTodosImpl.
func NewListTodosImpl(repo domain.TodoRepository) ListTodosImpl {
	return ListTodosImpl{
		repo: repo,
	}
}

// Execute lists the owner's todo items, optionally constrained by date.
func (lt ListTodosImpl) Execute(ctx context.Context, ownerSeq int64, opts ...domain.ListTodoOption) ([]domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if ownerSeq <= 0 {
		return nil, domain.NewValidationErr("owner is required")
	}

	todos, err := lt.repo.ListTodos(spanCtx, ownerSeq, opts...)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return todos, nil
}

// InitListTodos initializes the ListTodos use case and registers it in the dependency container.
type InitListTodos struct {
	TodoRepo domain.TodoRepository `resolve:""`
}

// Initialize initializes the ListTodosImpl use case and registers it in the dependency container.
func (ilt InitListTodos) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTodos](NewListTodosImpl(ilt.TodoRepo))
	return ctx, nil
}
