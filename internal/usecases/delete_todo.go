package usecases

import (
	"context"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// DeleteTodo defines the interface for the DeleteTodo use case.
type DeleteTodo interface {
	Execute(ctx context.Context, seq, ownerSeq int64, clientIP string) error
}

// DeleteTodoImpl is the implementation of the DeleteTodo use case.
type DeleteTodoImpl struct {
	repo         domain.TodoRepository
	timeProvider domain.CurrentTimeProvider
}

// NewDeleteTodoImpl creates a new instance of DeleteTodoImpl.
func NewDeleteTodoImpl(repo domain.TodoRepository, timeProvider domain.CurrentTimeProvider) DeleteTodoImpl {
	return DeleteTodoImpl{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// Execute soft-deletes one of the owner's todo items.
func (dt DeleteTodoImpl) Execute(ctx context.Context, seq, ownerSeq int64, clientIP string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if seq <= 0 {
		return domain.NewValidationErr("todo_seq is required")
	}
	if ownerSeq <= 0 {
		return domain.NewValidationErr("owner is required")
	}

	found, err := dt.repo.DeleteTodo(spanCtx, seq, ownerSeq, dt.timeProvider.Now(), clientIP)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !found {
		err := domain.NewNotFoundErr("todo not found")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// InitDeleteTodo initializes the DeleteTodo use case and registers it in the dependency container.
type InitDeleteTodo struct {
	TodoRepo     domain.TodoRepository      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the DeleteTodoImpl use case and registers it in the dependency container.
func (idt InitDeleteTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteTodo](NewDeleteTodoImpl(idt.TodoRepo, idt.TimeProvider))
	return ctx, nil
}
